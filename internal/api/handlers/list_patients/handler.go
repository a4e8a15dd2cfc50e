package list_patients

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/patients
// Query params: search, limit, offset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := handlers.Paging(r)
	if err != nil {
		h.logger.Warn("GET /patients - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListPatientsRequest{
		Search: handlers.QueryString(r, "search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		if domain.IsCallerError(err) {
			h.logger.Warn("GET /patients - Invalid filter: %v", err)
		} else {
			h.logger.Error("GET /patients - Failed to list patients: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /patients - Patients retrieved successfully: count=%d", len(result.Patients))
	handlers.RespondJSON(w, http.StatusOK, result)
}
