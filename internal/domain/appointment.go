package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// AppointmentType represents the category of an appointment
type AppointmentType string

const (
	TypeRoutine      AppointmentType = "routine"
	TypeFollowUp     AppointmentType = "follow_up"
	TypeConsultation AppointmentType = "consultation"
	TypeUrgent       AppointmentType = "urgent"
	TypeProcedure    AppointmentType = "procedure"
)

// AppointmentTypes lists every known appointment category
var AppointmentTypes = []AppointmentType{
	TypeRoutine,
	TypeFollowUp,
	TypeConsultation,
	TypeUrgent,
	TypeProcedure,
}

// IsValid reports whether t is a known appointment category
func (t AppointmentType) IsValid() bool {
	for _, known := range AppointmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Appointment represents a booked visit slot between a patient and a provider
type Appointment struct {
	ID         uuid.UUID
	PatientID  uuid.UUID
	ProviderID uuid.UUID

	AppointmentDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString

	Status AppointmentStatus
	Type   AppointmentType
	Notes  *string

	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its provider's time
func (a *Appointment) IsActive() bool {
	return a.Status.IsActive()
}

// CanBeRescheduled returns true if the appointment can be moved to another time
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// DurationMinutes returns the length of the appointment
func (a *Appointment) DurationMinutes() int {
	return a.StartTime.MinutesUntil(a.EndTime)
}

// AppointmentDetails is an appointment joined with display names of its participants
type AppointmentDetails struct {
	Appointment
	PatientName       string
	ProviderName      string
	ProviderSpecialty string
}

// AppointmentFilter фильтр для списка приёмов
type AppointmentFilter struct {
	PatientID  *uuid.UUID
	ProviderID *uuid.UUID
	Date       *time.Time
	Status     *AppointmentStatus
	Limit      int
	Offset     int
}
