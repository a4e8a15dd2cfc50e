package cancel_appointment

import (
	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	transitionStatus "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/transition_status"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустая причина проверяется в use case
func (r *CancelAppointmentRequest) ToUseCaseRequest(appointmentID uuid.UUID) *transitionStatus.Request {
	reason := r.Reason
	return &transitionStatus.Request{
		AppointmentID:      appointmentID,
		NewStatus:          domain.StatusCancelled.String(),
		CancellationReason: &reason,
	}
}
