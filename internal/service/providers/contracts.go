package providers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// ProviderRepository интерфейс репозитория врачей
type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) (*domain.Provider, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, filter domain.ProviderFilter) ([]*domain.Provider, error)
	Update(ctx context.Context, p *domain.Provider) (*domain.Provider, error)
}

// ScheduleRepository интерфейс репозитория расписаний врачей
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.ProviderSchedule) (*domain.ProviderSchedule, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*domain.ProviderSchedule, error)
	Delete(ctx context.Context, providerID, scheduleID uuid.UUID) error
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
