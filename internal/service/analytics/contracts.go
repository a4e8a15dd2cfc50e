package analytics

import (
	"context"
	"time"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// AnalyticsRepository интерфейс репозитория агрегатов по приёмам
type AnalyticsRepository interface {
	DailyLoad(ctx context.Context, from, to time.Time) ([]domain.DailyLoad, error)
	ProviderUtilization(ctx context.Context, since time.Time) ([]domain.ProviderUtilization, error)
	MonthlyNoShows(ctx context.Context, since time.Time) ([]domain.MonthlyNoShows, error)
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
