package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics/models"
)

// Service сервис отчётов по приёмам
type Service struct {
	analyticsRepo AnalyticsRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(analyticsRepo AnalyticsRepository, logger Logger) *Service {
	return &Service{
		analyticsRepo: analyticsRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// DailyLoad возвращает количество приёмов по дням
// По умолчанию окно от 30 дней назад до 30 дней вперёд
func (s *Service) DailyLoad(ctx context.Context, req *models.DailyLoadRequest) (*models.DailyLoadResponse, error) {
	today := domain.DateOnly(s.timeProvider.Now())

	from := today.AddDate(0, 0, -domain.DefaultDailyLoadWindowDays)
	if req.From != nil {
		from = domain.DateOnly(*req.From)
	}
	to := today.AddDate(0, 0, domain.DefaultDailyLoadWindowDays)
	if req.To != nil {
		to = domain.DateOnly(*req.To)
	}

	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' cannot be before 'from'", ErrInvalidPeriod)
	}
	if to.Sub(from) > maxDailyLoadWindowDays*24*time.Hour {
		return nil, fmt.Errorf("%w: window cannot exceed %d days", ErrInvalidPeriod, maxDailyLoadWindowDays)
	}

	days, err := s.analyticsRepo.DailyLoad(ctx, from, to)
	if err != nil {
		s.logger.Error("DailyLoad: repository error: %v", err)
		return nil, fmt.Errorf("%w: DailyLoad - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DailyLoad: %s..%s, %d days with appointments",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat), len(days))
	return models.FromDomainDailyLoad(from, to, days), nil
}

// ProviderUtilization возвращает загрузку активных врачей за последние N дней
func (s *Service) ProviderUtilization(ctx context.Context, req *models.ProviderUtilizationRequest) (*models.ProviderUtilizationResponse, error) {
	days := req.Days
	if days == 0 {
		days = domain.DefaultUtilizationPeriodDays
	}
	if days < 1 || days > maxUtilizationDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidPeriod, maxUtilizationDays)
	}

	since := domain.DateOnly(s.timeProvider.Now()).AddDate(0, 0, -days)

	list, err := s.analyticsRepo.ProviderUtilization(ctx, since)
	if err != nil {
		s.logger.Error("ProviderUtilization: repository error: %v", err)
		return nil, fmt.Errorf("%w: ProviderUtilization - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ProviderUtilization: %d providers over %d days", len(list), days)
	return models.FromDomainUtilization(days, since, list), nil
}

// NoShowTrend возвращает помесячную долю неявок, начиная с первого дня месяца N месяцев назад
func (s *Service) NoShowTrend(ctx context.Context, req *models.NoShowTrendRequest) (*models.NoShowTrendResponse, error) {
	months := req.Months
	if months == 0 {
		months = defaultNoShowMonths
	}
	if months < 1 || months > maxNoShowMonths {
		return nil, fmt.Errorf("%w: months must be between 1 and %d", ErrInvalidPeriod, maxNoShowMonths)
	}

	now := s.timeProvider.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	list, err := s.analyticsRepo.MonthlyNoShows(ctx, since)
	if err != nil {
		s.logger.Error("NoShowTrend: repository error: %v", err)
		return nil, fmt.Errorf("%w: NoShowTrend - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNoShows(since, list), nil
}
