package list_visits

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/visits
// Query params: patientId, providerId, limit, offset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r)
	if err != nil {
		h.logger.Warn("GET /visits - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if domain.IsCallerError(err) {
			h.logger.Warn("GET /visits - Invalid filter: %v", err)
		} else {
			h.logger.Error("GET /visits - Failed to list visits: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /visits - Visits retrieved successfully: count=%d", len(result.Visits))
	handlers.RespondJSON(w, http.StatusOK, result)
}
