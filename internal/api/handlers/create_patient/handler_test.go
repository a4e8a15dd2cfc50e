package create_patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.CreatePatientRequest) (*models.PatientResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.PatientResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(payload)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.CreatePatientRequest) bool {
		return req.FirstName == "Ada" && req.DateOfBirth.Equal(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC))
	})).Return(&models.PatientResponse{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace"}, nil)

	rec := serve(svc, `{"firstName":"Ada","lastName":"Lovelace","dateOfBirth":"1990-04-12","phone":"+100000"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing last name", payload: `{"firstName":"Ada","dateOfBirth":"1990-04-12","phone":"1"}`},
		{name: "bad email", payload: `{"firstName":"Ada","lastName":"L","dateOfBirth":"1990-04-12","phone":"1","email":"nope"}`},
		{name: "bad date", payload: `{"firstName":"Ada","lastName":"L","dateOfBirth":"12/04/1990","phone":"1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}

			rec := serve(svc, tt.payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_DuplicateEmail(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, patients.ErrDuplicateEmail)

	rec := serve(svc, `{"firstName":"Ada","lastName":"L","dateOfBirth":"1990-04-12","phone":"1","email":"ada@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.CodeValidation, body["error"])
	assert.Equal(t, "patient with this email already exists", body["message"])
}
