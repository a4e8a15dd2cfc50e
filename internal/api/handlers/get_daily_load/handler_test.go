package get_daily_load

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) DailyLoad(ctx context.Context, req *models.DailyLoadRequest) (*models.DailyLoadResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.DailyLoadResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/daily-load"+query, nil))
	return rec
}

func TestHandle_DefaultPeriod(t *testing.T) {
	svc := &mockService{}
	svc.On("DailyLoad", mock.Anything, &models.DailyLoadRequest{}).
		Return(&models.DailyLoadResponse{From: "2026-09-18", To: "2026-11-17", Days: []models.DailyLoadItem{}}, nil)

	rec := serve(svc, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"from":"2026-09-18","to":"2026-11-17","days":[]}`, rec.Body.String())
}

func TestHandle_ExplicitPeriod(t *testing.T) {
	svc := &mockService{}
	svc.On("DailyLoad", mock.Anything, mock.MatchedBy(func(req *models.DailyLoadRequest) bool {
		return req.From != nil && req.From.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) &&
			req.To != nil && req.To.Equal(time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC))
	})).Return(&models.DailyLoadResponse{}, nil)

	rec := serve(svc, "?from=2026-10-01&to=2026-10-31")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	rec := serve(svc, "?from=yesterday")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "DailyLoad", mock.Anything, mock.Anything)

	svc = &mockService{}
	svc.On("DailyLoad", mock.Anything, mock.Anything).Return(nil, analytics.ErrInvalidPeriod)
	rec = serve(svc, "?from=2026-10-31&to=2026-10-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
