package book_appointment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// validateRequest валидирует форму запроса; правила времени проверяет scheduling.ValidateTiming
func validateRequest(req *Request) error {
	if req.PatientID == uuid.Nil {
		return fmt.Errorf("%w: patientId is required", domain.ErrValidation)
	}

	if req.ProviderID == uuid.Nil {
		return fmt.Errorf("%w: providerId is required", domain.ErrValidation)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: appointmentDate is required", domain.ErrValidation)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", domain.ErrValidation)
	}

	// Пустой тип означает обычный приём
	if req.Type == "" {
		req.Type = domain.TypeRoutine
	}
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown appointment type %q", domain.ErrValidation, req.Type)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes cannot exceed %d characters", domain.ErrValidation, domain.MaxNotesLength)
	}

	return nil
}
