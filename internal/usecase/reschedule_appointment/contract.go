package reschedule_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	FindOverlapping(ctx context.Context, providerID uuid.UUID, date time.Time, start, end types.TimeString, excludeID *uuid.UUID) (*domain.Appointment, error)
	Reschedule(ctx context.Context, id uuid.UUID, date time.Time, start, end types.TimeString, notes *string) (*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписаний врачей
type ScheduleRepository interface {
	ListApplicable(ctx context.Context, providerID uuid.UUID, dayOfWeek int, date time.Time) ([]*domain.ProviderSchedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
