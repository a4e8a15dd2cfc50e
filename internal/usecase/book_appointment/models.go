package book_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// Request модель запроса на запись к врачу
type Request struct {
	PatientID  uuid.UUID
	ProviderID uuid.UUID
	Date       time.Time        // Дата приёма (без времени)
	StartTime  types.TimeString // Время начала, например "10:00"
	EndTime    types.TimeString // Время окончания, например "10:30"
	Type       domain.AppointmentType
	Notes      *string
}

// Response созданный приём
type Response struct {
	Appointment *domain.Appointment
}
