package reschedule_appointment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// validateRequest валидирует форму запроса
func validateRequest(req *Request) error {
	if req.AppointmentID == uuid.Nil {
		return fmt.Errorf("%w: appointmentId is required", domain.ErrValidation)
	}

	if !req.movesTime() && req.Notes == nil {
		return ErrNothingToUpdate
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: appointmentDate is invalid", domain.ErrValidation)
	}

	if (req.StartTime != nil && req.StartTime.IsZero()) || (req.EndTime != nil && req.EndTime.IsZero()) {
		return fmt.Errorf("%w: startTime and endTime cannot be empty", domain.ErrValidation)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes cannot exceed %d characters", domain.ErrValidation, domain.MaxNotesLength)
	}

	return nil
}
