package add_schedule

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

const (
	msgInvalidProviderID  = "некорректный ID врача"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
)

type Handler struct {
	service ProviderService
	logger  Logger
}

func NewHandler(service ProviderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers/{providerId}/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathUUID(r, "providerId")
	if err != nil {
		h.logger.Warn("POST /providers/{id}/schedules - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	var req AddScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /providers/{id}/schedules - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /providers/{id}/schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.AddSchedule(r.Context(), providerID, serviceReq)
	if err != nil {
		if domain.IsCallerError(err) {
			h.logger.Warn("POST /providers/{id}/schedules - Schedule rejected: provider_id=%s, error=%v", providerID, err)
		} else {
			h.logger.Error("POST /providers/{id}/schedules - Failed to add schedule: provider_id=%s, error=%v", providerID, err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("POST /providers/{id}/schedules - Schedule added successfully: provider_id=%s, schedule_id=%s, day=%d",
		providerID, result.ID, result.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
