package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingMetrics struct {
	mu   sync.Mutex
	seen []observation
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, observation{method: method, route: route, status: status})
}

type recordingLogger struct {
	mu     sync.Mutex
	levels []string
}

func (l *recordingLogger) log(level string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels = append(l.levels, level)
}

func (l *recordingLogger) Info(string, ...interface{})  { l.log("info") }
func (l *recordingLogger) Warn(string, ...interface{})  { l.log("warn") }
func (l *recordingLogger) Error(string, ...interface{}) { l.log("error") }

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &recordingMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/appointments/{appointmentId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments/123", nil))

	require.Len(t, m.seen, 1)
	assert.Equal(t, observation{method: http.MethodGet, route: "/appointments/{appointmentId}", status: http.StatusNotFound}, m.seen[0])
}

func TestMetricsMiddleware_DefaultStatus(t *testing.T) {
	m := &recordingMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, m.seen, 1)
	assert.Equal(t, http.StatusOK, m.seen[0].status)
}

func TestLogging_LevelByStatus(t *testing.T) {
	for _, tt := range []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: "info"},
		{status: http.StatusConflict, level: "warn"},
		{status: http.StatusInternalServerError, level: "error"},
	} {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			logger := &recordingLogger{}
			h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/appointments", nil))

			assert.Equal(t, []string{tt.level}, logger.levels)
		})
	}
}

func TestRecovery(t *testing.T) {
	logger := &recordingLogger{}
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["error"])
	assert.Equal(t, []string{"error"}, logger.levels)
}
