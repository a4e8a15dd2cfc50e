package list_providers

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/providers
// Query params: specialty, isActive, limit, offset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r)
	if err != nil {
		h.logger.Warn("GET /providers - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if domain.IsCallerError(err) {
			h.logger.Warn("GET /providers - Invalid filter: %v", err)
		} else {
			h.logger.Error("GET /providers - Failed to list providers: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /providers - Providers retrieved successfully: count=%d", len(result.Providers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
