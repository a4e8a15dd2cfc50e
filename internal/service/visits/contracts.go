package visits

import (
	"context"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	ExistsForAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error)
	Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
	List(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, error)
	Update(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
}

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
