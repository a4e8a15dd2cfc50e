package get_no_show_trend

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics/models"
)

const (
	msgInvalidMonths = "некорректное количество месяцев"
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

// Handle GET /api/v1/analytics/no-shows
// Query params: months (по умолчанию 12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	months, err := handlers.QueryInt(r, "months")
	if err != nil {
		h.logger.Warn("GET /analytics/no-shows - Invalid months: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonths)
		return
	}

	result, err := h.service.NoShowTrend(r.Context(), &models.NoShowTrendRequest{Months: months})
	if err != nil {
		if domain.IsCallerError(err) {
			h.logger.Warn("GET /analytics/no-shows - Invalid period: %v", err)
		} else {
			h.logger.Error("GET /analytics/no-shows - Failed to build report: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
