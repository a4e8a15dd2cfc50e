package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondDomainError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "validation",
			err:     fmt.Errorf("%w: appointment must be at least 15 minutes", domain.ErrValidation),
			status:  http.StatusBadRequest,
			code:    domain.CodeValidation,
			message: "appointment must be at least 15 minutes",
		},
		{
			name:    "conflict",
			err:     domain.ErrAppointmentConflict,
			status:  http.StatusConflict,
			code:    domain.CodeAppointmentConflict,
			message: domain.ErrAppointmentConflict.Error(),
		},
		{
			name:    "not found",
			err:     fmt.Errorf("%w: patient not found", domain.ErrNotFound),
			status:  http.StatusNotFound,
			code:    domain.CodeNotFound,
			message: "patient not found",
		},
		{
			name:    "internal hides details",
			err:     errors.New("pq: connection refused"),
			status:  http.StatusInternalServerError,
			code:    domain.CodeInternal,
			message: msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			RespondDomainError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Error)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestRespondBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondBadRequest(rec, "некорректное тело запроса")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, domain.CodeValidation, body.Error)
	assert.Equal(t, "некорректное тело запроса", body.Message)
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

type sampleRequest struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=a b"`
}

func TestDecodeAndValidate(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"c"}`))

	var req sampleRequest
	require.NoError(t, DecodeJSON(r, &req))
	err := Validate(&req)

	require.Error(t, err)
	msg := ValidationMessage(err)
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "status must be one of [a b]")
}

func TestDecodeJSON_Malformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

	var req sampleRequest
	assert.Error(t, DecodeJSON(r, &req))
}

func TestPathUUID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "not-a-uuid"})

	_, err := PathUUID(r, "id")
	assert.Error(t, err)

	r = mux.SetURLVars(r, map[string]string{"id": "11111111-1111-1111-1111-111111111111"})
	id, err := PathUUID(r, "id")
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", id.String())
}

func TestQueryParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?date=2026-10-19&limit=20&active=true&search=+smith+", nil)

	date, err := QueryDate(r, "date")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", date.Format(domain.DateFormat))

	limit, offset, err := Paging(r)
	require.NoError(t, err)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	active, err := QueryBool(r, "active")
	require.NoError(t, err)
	assert.True(t, *active)

	assert.Equal(t, "smith", *QueryString(r, "search"))
	assert.Nil(t, QueryString(r, "missing"))

	missing, err := QueryUUID(r, "patientId")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQueryDate_Invalid(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?date=19.10.2026", nil)

	_, err := QueryDate(r, "date")
	assert.Error(t, err)
}
