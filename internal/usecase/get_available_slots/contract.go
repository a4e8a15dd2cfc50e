package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	// ListActiveByProviderDate получает активные приёмы врача на дату
	ListActiveByProviderDate(ctx context.Context, providerID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписаний врачей
type ScheduleRepository interface {
	// ListApplicable получает правила расписания, действующие в указанную дату
	ListApplicable(ctx context.Context, providerID uuid.UUID, dayOfWeek int, date time.Time) ([]*domain.ProviderSchedule, error)
}

// ProviderRepository интерфейс репозитория врачей
type ProviderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error)
}

// Metrics счётчик запросов слотов
type Metrics interface {
	IncSlotQuery()
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
