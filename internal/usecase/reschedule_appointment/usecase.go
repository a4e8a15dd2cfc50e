package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	appointmentRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/appointment"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/scheduling"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/txmanager"
)

// UseCase use case для переноса приёма и изменения заметок
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	policy          domain.BookingPolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute переносит приём
//
// Новое время проходит те же проверки, что и при записи; пересечение ищется среди
// других приёмов врача, сам переносимый приём исключается. Если заданы только заметки,
// приём обновляется в любом статусе без проверок времени.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%s", req.AppointmentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var result *domain.Appointment

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем приём с блокировкой
		current, err := uc.appointmentRepo.GetByIDForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}

		date := current.AppointmentDate
		start, end := current.StartTime, current.EndTime
		if req.Date != nil {
			date = domain.DateOnly(*req.Date)
		}
		if req.StartTime != nil {
			start = *req.StartTime
		}
		if req.EndTime != nil {
			end = *req.EndTime
		}

		if req.movesTime() {
			// 2.2. Переносить можно только ещё не начавшийся приём
			if !current.CanBeRescheduled() {
				return fmt.Errorf("%w: cannot reschedule appointment with status %s",
					domain.ErrInvalidTransition, current.Status)
			}

			// 2.3. Проверка длительности и окна записи
			if err := scheduling.ValidateTiming(date, start, end, now, uc.policy); err != nil {
				return err
			}

			// 2.4. Новое время должно попадать в расписание врача
			rules, err := uc.scheduleRepo.ListApplicable(txCtx, current.ProviderID, scheduling.DayOfWeek(date), date)
			if err != nil {
				return fmt.Errorf("%w: failed to get schedules: %w", ErrInternal, err)
			}
			if !scheduling.Covers(rules, date, start, end) {
				uc.logger.Warn("RescheduleAppointment: provider=%s has no schedule covering %s %s-%s",
					current.ProviderID, date.Format(domain.DateFormat), start, end)
				return domain.ErrProviderUnavailable
			}

			// 2.5. Пересечения с другими приёмами врача
			conflict, err := uc.appointmentRepo.FindOverlapping(txCtx, current.ProviderID, date, start, end, &current.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to check overlapping appointments: %w", ErrInternal, err)
			}
			if conflict != nil {
				uc.logger.Warn("RescheduleAppointment: provider=%s already booked by appointment id=%s (%s-%s)",
					current.ProviderID, conflict.ID, conflict.StartTime, conflict.EndTime)
				return domain.ErrAppointmentConflict
			}
		}

		// 2.6. Сохраняем
		updated, err := uc.appointmentRepo.Reschedule(txCtx, current.ID, date, start, end, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrOverlap):
				return domain.ErrAppointmentConflict
			case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to reschedule appointment: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("RescheduleAppointment: concurrent booking detected: %v", err)
			return nil, domain.ErrAppointmentConflict
		}
		if domain.IsCallerError(err) {
			uc.logger.Warn("RescheduleAppointment: appointment=%s: %v", req.AppointmentID, err)
			return nil, err
		}
		uc.logger.Error("RescheduleAppointment: appointment=%s: %v", req.AppointmentID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	uc.logger.Info("RescheduleAppointment: appointment=%s now %s %s-%s",
		result.ID, result.AppointmentDate.Format(domain.DateFormat), result.StartTime, result.EndTime)

	return &Response{Appointment: result}, nil
}
