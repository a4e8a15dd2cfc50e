package book_appointment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	bookAppointment "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/book_appointment"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patientId" validate:"required"`
	ProviderID      uuid.UUID `json:"providerId" validate:"required"`
	AppointmentDate string    `json:"appointmentDate" validate:"required"` // "2026-10-19"
	StartTime       string    `json:"startTime" validate:"required"`       // "10:00"
	EndTime         string    `json:"endTime" validate:"required"`         // "10:30"
	AppointmentType string    `json:"appointmentType,omitempty" validate:"omitempty,oneof=routine follow_up consultation urgent procedure"`
	Notes           *string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	date, err := handlers.ParseDate(r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &bookAppointment.Request{
		PatientID:  r.PatientID,
		ProviderID: r.ProviderID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Type:       domain.AppointmentType(r.AppointmentType),
		Notes:      r.Notes,
	}, nil
}
