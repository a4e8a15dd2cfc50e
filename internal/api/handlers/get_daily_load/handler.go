package get_daily_load

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics/models"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/analytics/daily-load
// Query params: from, to (YYYY-MM-DD, по умолчанию сегодня -/+ 30 дней)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /analytics/daily-load - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /analytics/daily-load - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.DailyLoad(r.Context(), &models.DailyLoadRequest{From: from, To: to})
	if err != nil {
		if domain.IsCallerError(err) {
			h.logger.Warn("GET /analytics/daily-load - Invalid period: %v", err)
		} else {
			h.logger.Error("GET /analytics/daily-load - Failed to build report: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
