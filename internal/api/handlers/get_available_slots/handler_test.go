package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	getAvailableSlots "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/get_available_slots"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	providerID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	monday     = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
)

func serve(uc *mockUseCase, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/providers/"+providerID.String()+"/available-slots"+query, nil)
	r = mux.SetURLVars(r, map[string]string{"providerId": providerID.String()})
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, r)
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{ProviderID: providerID, Date: monday, SlotDurationMinutes: 30}).
		Return(&getAvailableSlots.Response{
			ProviderID:          providerID,
			Date:                monday,
			SlotDurationMinutes: 30,
			Slots: []getAvailableSlots.Slot{
				{StartTime: "09:00", EndTime: "09:30"},
				{StartTime: "10:30", EndTime: "11:00"},
			},
		}, nil)

	rec := serve(uc, "?date=2026-10-19&slotDuration=30")

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-19", body.Date)
	assert.Equal(t, []AvailableSlot{{StartTime: "09:00", EndTime: "09:30"}, {StartTime: "10:30", EndTime: "11:00"}}, body.Slots)
}

func TestHandle_IncludeUnbookable(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{ProviderID: providerID, Date: monday, IncludeUnbookable: true}).
		Return(&getAvailableSlots.Response{ProviderID: providerID, Date: monday, SlotDurationMinutes: 30}, nil)

	rec := serve(uc, "?date=2026-10-19&includeUnbookable=true")

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_BadQuery(t *testing.T) {
	for _, query := range []string{"", "?date=tomorrow", "?date=2026-10-19&slotDuration=half", "?date=2026-10-19&includeUnbookable=maybe"} {
		uc := &mockUseCase{}

		rec := serve(uc, query)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "provider not found", err: getAvailableSlots.ErrProviderNotFound, status: http.StatusNotFound, code: domain.CodeNotFound},
		{name: "bad duration", err: domain.ErrValidation, status: http.StatusBadRequest, code: domain.CodeValidation},
		{name: "internal", err: getAvailableSlots.ErrInternal, status: http.StatusInternalServerError, code: domain.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc, "?date=2026-10-19")

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["error"])
		})
	}
}
