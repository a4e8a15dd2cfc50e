package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	GetDetails(ctx context.Context, id uuid.UUID) (*domain.AppointmentDetails, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
