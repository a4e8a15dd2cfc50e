package create_provider

import (
	"errors"
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/providers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /providers - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrDuplicate):
			h.logger.Warn("POST /providers - Duplicate provider: license=%s, email=%s", req.LicenseNumber, req.Email)

		case domain.IsCallerError(err):
			h.logger.Warn("POST /providers - Provider rejected: %v", err)

		default:
			h.logger.Error("POST /providers - Failed to create provider: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("POST /providers - Provider created successfully: provider_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
