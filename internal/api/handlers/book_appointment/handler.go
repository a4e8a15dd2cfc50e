package book_appointment

import (
	"errors"
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время приёма, ожидается YYYY-MM-DD и HH:MM"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /appointments - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAppointmentConflict):
			h.logger.Warn("POST /appointments - Slot already booked: provider_id=%s, date=%s, start=%s",
				req.ProviderID, req.AppointmentDate, req.StartTime)

		case domain.IsCallerError(err):
			h.logger.Warn("POST /appointments - Booking rejected: patient_id=%s, provider_id=%s, error=%v",
				req.PatientID, req.ProviderID, err)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: patient_id=%s, provider_id=%s, error=%v",
				req.PatientID, req.ProviderID, err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("POST /appointments - Appointment booked successfully: appointment_id=%s, provider_id=%s",
		result.Appointment.ID, result.Appointment.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainAppointment(result.Appointment))
}
