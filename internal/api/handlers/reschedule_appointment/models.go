package reschedule_appointment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	rescheduleAppointment "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/reschedule_appointment"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// RescheduleRequest HTTP request model
// Все поля опциональны; незаданные берутся из текущего приёма
type RescheduleRequest struct {
	AppointmentDate *string `json:"appointmentDate,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	EndTime         *string `json:"endTime,omitempty"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(appointmentID uuid.UUID) (*rescheduleAppointment.Request, error) {
	date, err := handlers.ParseOptionalDate(r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	start, err := parseOptionalTime(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	end, err := parseOptionalTime(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		Notes:         r.Notes,
	}, nil
}

func parseOptionalTime(s *string) (*types.TimeString, error) {
	if s == nil {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
