package delete_schedule

import (
	"errors"
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/providers"
)

const (
	msgInvalidProviderID = "некорректный ID врача"
	msgInvalidScheduleID = "некорректный ID правила расписания"
	msgNotFound          = "правило расписания не найдено"
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

// Handle DELETE /api/v1/providers/{providerId}/schedules/{scheduleId}
// Существующие приёмы не затрагиваются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathUUID(r, "providerId")
	if err != nil {
		h.logger.Warn("DELETE /providers/{id}/schedules/{id} - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	scheduleID, err := handlers.PathUUID(r, "scheduleId")
	if err != nil {
		h.logger.Warn("DELETE /providers/{id}/schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	if err := h.service.DeleteSchedule(r.Context(), providerID, scheduleID); err != nil {
		switch {
		case errors.Is(err, providers.ErrScheduleNotFound):
			h.logger.Warn("DELETE /providers/{id}/schedules/{id} - Schedule not found: provider_id=%s, schedule_id=%s",
				providerID, scheduleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /providers/{id}/schedules/{id} - Failed to delete schedule: schedule_id=%s, error=%v",
				scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /providers/{id}/schedules/{id} - Schedule deleted successfully: provider_id=%s, schedule_id=%s",
		providerID, scheduleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
