package create_visit

import (
	"errors"
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/visits"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service VisitService
	logger  Logger
}

func NewHandler(service VisitService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /visits - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /visits - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrVisitExists):
			h.logger.Warn("POST /visits - Visit already exists: appointment_id=%s", req.AppointmentID)

		case domain.IsCallerError(err):
			h.logger.Warn("POST /visits - Visit rejected: appointment_id=%s, error=%v", req.AppointmentID, err)

		default:
			h.logger.Error("POST /visits - Failed to create visit: appointment_id=%s, error=%v", req.AppointmentID, err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("POST /visits - Visit created successfully: visit_id=%s, appointment_id=%s", result.ID, req.AppointmentID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
