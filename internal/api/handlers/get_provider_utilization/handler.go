package get_provider_utilization

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics/models"
)

const (
	msgInvalidDays = "некорректное количество дней"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/provider-utilization
// Query params: days (по умолчанию 30)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	days, err := handlers.QueryInt(r, "days")
	if err != nil {
		h.logger.Warn("GET /analytics/provider-utilization - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	result, err := h.service.ProviderUtilization(r.Context(), &models.ProviderUtilizationRequest{Days: days})
	if err != nil {
		if domain.IsCallerError(err) {
			h.logger.Warn("GET /analytics/provider-utilization - Invalid period: %v", err)
		} else {
			h.logger.Error("GET /analytics/provider-utilization - Failed to build report: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
