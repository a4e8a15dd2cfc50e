package update_patient

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

const (
	msgInvalidPatientID   = "некорректный ID пациента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOfBirth = "некорректная дата рождения, ожидается YYYY-MM-DD"
)

type Handler struct {
	service PatientService
	logger  Logger
}

func NewHandler(service PatientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/patients/{patientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	patientID, err := handlers.PathUUID(r, "patientId")
	if err != nil {
		h.logger.Warn("PATCH /patients/{id} - Invalid patient ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	var req UpdatePatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /patients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /patients/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /patients/{id} - Invalid date of birth: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOfBirth)
		return
	}

	result, err := h.service.Update(r.Context(), patientID, serviceReq)
	if err != nil {
		if domain.IsCallerError(err) {
			h.logger.Warn("PATCH /patients/{id} - Update rejected: patient_id=%s, error=%v", patientID, err)
		} else {
			h.logger.Error("PATCH /patients/{id} - Failed to update patient: patient_id=%s, error=%v", patientID, err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("PATCH /patients/{id} - Patient updated successfully: patient_id=%s", patientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
