package update_status

import (
	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/appointments/models"
	transitionStatus "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/transition_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status             string  `json:"status" validate:"required"`
	CancellationReason *string `json:"cancellationReason,omitempty" validate:"omitempty,max=500"`
}

// StatusResponse HTTP response model
type StatusResponse struct {
	*models.AppointmentResponse
	VisitCreated bool `json:"visitCreated"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(appointmentID uuid.UUID) *transitionStatus.Request {
	return &transitionStatus.Request{
		AppointmentID:      appointmentID,
		NewStatus:          r.Status,
		CancellationReason: r.CancellationReason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionStatus.Response) *StatusResponse {
	return &StatusResponse{
		AppointmentResponse: models.FromDomainAppointment(resp.Appointment),
		VisitCreated:        resp.VisitCreated,
	}
}
