package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	providerRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/provider"
	scheduleRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/schedule"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/providers/models"
)

// Service сервис для работы с врачами и их расписанием
type Service struct {
	providerRepo ProviderRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса врачей
func NewService(providerRepo ProviderRepository, scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		providerRepo: providerRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create добавляет врача
func (s *Service) Create(ctx context.Context, req *models.CreateProviderRequest) (*models.ProviderResponse, error) {
	s.logger.Info("Create: adding provider %s %s (%s)", req.FirstName, req.LastName, req.Specialty)

	provider := req.ToDomain()
	if err := validateProvider(provider); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.providerRepo.Create(ctx, provider)
	if err != nil {
		if errors.Is(err, providerRepo.ErrDuplicate) {
			s.logger.Warn("Create: duplicate license number or email: %v", err)
			return nil, ErrDuplicate
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: provider id=%s added", created.ID)
	return models.FromDomainProvider(created), nil
}

// GetByID получает врача по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ProviderResponse, error) {
	provider, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainProvider(provider), nil
}

// List получает врачей с фильтрацией по специальности и активности
func (s *Service) List(ctx context.Context, req *models.ListProvidersRequest) (*models.ProviderListResponse, error) {
	limit, offset, err := domain.NormalizePage(req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	providers, err := s.providerRepo.List(ctx, domain.ProviderFilter{
		Specialty: req.Specialty,
		IsActive:  req.IsActive,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d providers", len(providers))
	return models.FromDomainProviderList(providers), nil
}

// Update обновляет переданные поля врача
// Деактивация не отменяет уже записанные приёмы, но новые записи к врачу отклоняются
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateProviderRequest) (*models.ProviderResponse, error) {
	s.logger.Info("Update: updating provider id=%s", id)

	provider, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(provider)
	if err := validateProvider(provider); err != nil {
		s.logger.Warn("Update: validation failed for provider id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.providerRepo.Update(ctx, provider)
	if err != nil {
		switch {
		case errors.Is(err, providerRepo.ErrProviderNotFound):
			return nil, ErrProviderNotFound
		case errors.Is(err, providerRepo.ErrDuplicate):
			return nil, ErrDuplicate
		}
		s.logger.Error("Update: repository error for provider id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProvider(updated), nil
}

// AddSchedule добавляет правило недельного расписания врачу
func (s *Service) AddSchedule(ctx context.Context, providerID uuid.UUID, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("AddSchedule: provider=%s, day=%d, %s-%s", providerID, req.DayOfWeek, req.StartTime, req.EndTime)

	// 1. Собираем правило; без даты начала правило действует с сегодняшнего дня
	schedule := &domain.ProviderSchedule{
		ProviderID:    providerID,
		DayOfWeek:     req.DayOfWeek,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		EffectiveFrom: domain.DateOnly(s.timeProvider.Now()),
	}
	if req.EffectiveFrom != nil {
		schedule.EffectiveFrom = domain.DateOnly(*req.EffectiveFrom)
	}
	if req.EffectiveUntil != nil {
		until := domain.DateOnly(*req.EffectiveUntil)
		schedule.EffectiveUntil = &until
	}

	// 2. Валидация
	if err := validateSchedule(schedule); err != nil {
		s.logger.Warn("AddSchedule: validation failed: %v", err)
		return nil, err
	}

	// 3. Врач должен существовать
	if err := s.ensureProvider(ctx, "AddSchedule", providerID); err != nil {
		return nil, err
	}

	// 4. Сохраняем
	created, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrProviderNotFound):
			return nil, ErrProviderNotFound
		case errors.Is(err, scheduleRepo.ErrConstraintViolation):
			return nil, fmt.Errorf("%w: schedule rule violates constraints", domain.ErrValidation)
		}
		s.logger.Error("AddSchedule: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: AddSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSchedule: schedule id=%s added to provider=%s", created.ID, providerID)
	return models.FromDomainSchedule(created), nil
}

// ListSchedules получает все правила расписания врача по дням недели
func (s *Service) ListSchedules(ctx context.Context, providerID uuid.UUID) (*models.ScheduleListResponse, error) {
	if err := s.ensureProvider(ctx, "ListSchedules", providerID); err != nil {
		return nil, err
	}

	schedules, err := s.scheduleRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListSchedules: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListSchedules - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainScheduleList(schedules), nil
}

// DeleteSchedule удаляет правило расписания врача
// Уже записанные приёмы остаются в силе
func (s *Service) DeleteSchedule(ctx context.Context, providerID, scheduleID uuid.UUID) error {
	s.logger.Info("DeleteSchedule: provider=%s, schedule=%s", providerID, scheduleID)

	if err := s.scheduleRepo.Delete(ctx, providerID, scheduleID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("DeleteSchedule: schedule id=%s not found for provider=%s", scheduleID, providerID)
			return ErrScheduleNotFound
		}
		s.logger.Error("DeleteSchedule: repository error: %v", err)
		return fmt.Errorf("%w: DeleteSchedule - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("%s: provider id=%s not found", op, id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("%s: repository error for provider id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return provider, nil
}

func (s *Service) ensureProvider(ctx context.Context, op string, id uuid.UUID) error {
	exists, err := s.providerRepo.Exists(ctx, id)
	if err != nil {
		s.logger.Error("%s: failed to check provider id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	if !exists {
		s.logger.Warn("%s: provider id=%s not found", op, id)
		return ErrProviderNotFound
	}
	return nil
}
