package create_patient

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

const (
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

// Handle POST /api/v1/patients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /patients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /patients - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /patients - Invalid date of birth: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOfBirth)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		if domain.IsCallerError(err) {
			h.logger.Warn("POST /patients - Patient rejected: %v", err)
		} else {
			h.logger.Error("POST /patients - Failed to create patient: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("POST /patients - Patient created successfully: patient_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
