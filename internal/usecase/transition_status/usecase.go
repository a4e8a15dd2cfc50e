package transition_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	appointmentRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/appointment"
)

// UseCase use case для смены статуса приёма
type UseCase struct {
	appointmentRepo AppointmentRepository
	visitRepo       VisitRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	appointmentRepo AppointmentRepository,
	visitRepo VisitRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		visitRepo:       visitRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет переход статуса по таблице допустимых переходов
// Строка приёма блокируется (SELECT ... FOR UPDATE), поэтому параллельные переходы
// одного приёма выполняются по очереди и каждый проверяется против уже применённого статуса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionStatus: appointment=%s, status=%s", req.AppointmentID, req.NewStatus)

	// 1. Валидация входных данных
	target, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("TransitionStatus: validation failed: %v", err)
		return nil, err
	}

	var (
		result       *domain.Appointment
		from         domain.AppointmentStatus
		visitCreated bool
	)

	// 2. Переход выполняется в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем приём с блокировкой
		current, err := uc.appointmentRepo.GetByIDForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}
		from = current.Status

		// 2.2. Проверяем переход по таблице (включая переход в тот же статус и выход из конечного)
		if !current.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: cannot change status from %s to %s",
				domain.ErrInvalidTransition, current.Status, target)
		}

		// 2.3. Отмена требует причину
		var reason *string
		if target == domain.StatusCancelled {
			reason = cancellationReason(req.CancellationReason)
			if reason == nil {
				return ErrReasonRequired
			}
		}

		// 2.4. Применяем статус
		updated, err := uc.appointmentRepo.UpdateStatus(txCtx, current.ID, target, reason)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
		}

		// 2.5. При завершении создаём заготовку визита, если её ещё нет
		if target == domain.StatusCompleted {
			visitCreated, err = uc.ensureVisit(txCtx, updated)
			if err != nil {
				return err
			}
		}

		result = updated
		return nil
	})

	if err != nil {
		if domain.IsCallerError(err) {
			uc.logger.Warn("TransitionStatus: appointment=%s: %v", req.AppointmentID, err)
			return nil, err
		}
		uc.logger.Error("TransitionStatus: appointment=%s: %v", req.AppointmentID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncTransition(from.String(), target.String())
	}
	uc.logger.Info("TransitionStatus: appointment=%s %s -> %s", result.ID, from, target)

	return &Response{Appointment: result, VisitCreated: visitCreated}, nil
}

// ensureVisit создаёт заготовку визита для завершённого приёма, если визита ещё нет.
// Вставка идёт через ON CONFLICT DO NOTHING, поэтому уже существующий визит не прерывает транзакцию.
func (uc *UseCase) ensureVisit(ctx context.Context, a *domain.Appointment) (bool, error) {
	created, err := uc.visitRepo.CreateIfAbsent(ctx, domain.NewVisitStub(a))
	if err != nil {
		return false, fmt.Errorf("%w: failed to create visit: %w", ErrInternal, err)
	}

	if created {
		uc.logger.Info("TransitionStatus: created visit stub for appointment=%s", a.ID)
	}
	return created, nil
}
