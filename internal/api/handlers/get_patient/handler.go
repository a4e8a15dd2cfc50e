package get_patient

import (
	"errors"
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients"
)

const (
	msgInvalidPatientID = "некорректный ID пациента"
	msgNotFound         = "пациент не найден"
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

// Handle GET /api/v1/patients/{patientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	patientID, err := handlers.PathUUID(r, "patientId")
	if err != nil {
		h.logger.Warn("GET /patients/{id} - Invalid patient ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	result, err := h.service.GetByID(r.Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, patients.ErrPatientNotFound):
			h.logger.Warn("GET /patients/{id} - Patient not found: patient_id=%s", patientID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /patients/{id} - Failed to get patient: patient_id=%s, error=%v", patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
