package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	providerRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/provider"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/scheduling"
)

// UseCase use case для получения свободных слотов врача
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	providerRepo    ProviderRepository
	metrics         Metrics
	policy          domain.BookingPolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	providerRepo ProviderRepository,
	metrics Metrics,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		providerRepo:    providerRepo,
		metrics:         metrics,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%s, date=%s, duration=%d",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.SlotDurationMinutes)

	if uc.metrics != nil {
		uc.metrics.IncSlotQuery()
	}

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.policy.SlotDuration); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		ProviderID:          req.ProviderID,
		Date:                domain.DateOnly(req.Date),
		SlotDurationMinutes: req.SlotDurationMinutes,
		Slots:               []Slot{},
	}

	// 2. Проверяем существование врача
	if _, err := uc.providerRepo.GetByID(ctx, req.ProviderID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%s not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get provider id=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. На прошедшие даты записаться нельзя
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Правила расписания на эту дату
	rules, err := uc.scheduleRepo.ListApplicable(ctx, req.ProviderID, scheduling.DayOfWeek(req.Date), response.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}
	if len(rules) == 0 {
		uc.logger.Info("GetAvailableSlots: provider=%s has no schedule on %s",
			req.ProviderID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 5. Активные приёмы на эту дату
	booked, err := uc.appointmentRepo.ListActiveByProviderDate(ctx, req.ProviderID, response.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Перебираем слоты; слишком ранние (меньше минимального времени до записи) отбрасываются,
	// если клиент не попросил полный список
	notBefore := now.Add(uc.policy.MinAdvance)
	if req.IncludeUnbookable {
		notBefore = time.Time{}
	}
	free, err := scheduling.FreeSlots(rules, booked, scheduling.SlotQuery{
		Date:            response.Date,
		DurationMinutes: req.SlotDurationMinutes,
		NotBefore:       notBefore,
	})
	if err != nil {
		return nil, err
	}

	response.Slots = toSlots(free)

	uc.logger.Info("GetAvailableSlots: found %d free slots (%d rules, %d booked)",
		len(response.Slots), len(rules), len(booked))

	return response, nil
}
