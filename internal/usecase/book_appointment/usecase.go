package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	appointmentRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/appointment"
	providerRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/provider"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/scheduling"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/txmanager"
)

// UseCase use case для записи пациента к врачу
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	providerRepo    ProviderRepository
	patientRepo     PatientRepository
	txManager       TransactionManager
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
	patientRepo PatientRepository,
	txManager TransactionManager,
	metrics Metrics,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		providerRepo:    providerRepo,
		patientRepo:     patientRepo,
		txManager:       txManager,
		metrics:         metrics,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case записи к врачу
//
// Проверка расписания, предварительная проверка пересечений и вставка выполняются
// в одной сериализуемой транзакции. Если параллельная запись всё же успела занять
// время, вставку отклоняет ограничение appointments_no_overlap, либо PostgreSQL отменяет
// транзакцию при коммите. Оба случая возвращаются как domain.ErrAppointmentConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: patient=%s, provider=%s, date=%s, time=%s-%s",
		req.PatientID, req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		uc.record(outcomeInvalid)
		return nil, err
	}

	// 2. Проверка длительности и окна записи
	now := uc.timeProvider.Now()
	if err := scheduling.ValidateTiming(req.Date, req.StartTime, req.EndTime, now, uc.policy); err != nil {
		uc.logger.Warn("BookAppointment: timing rejected: %v", err)
		uc.record(outcomeInvalid)
		return nil, err
	}

	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Врач должен существовать и принимать записи
		provider, err := uc.providerRepo.GetByID(txCtx, req.ProviderID)
		if err != nil {
			if errors.Is(err, providerRepo.ErrProviderNotFound) {
				return ErrProviderNotFound
			}
			return fmt.Errorf("%w: failed to get provider: %w", ErrInternal, err)
		}
		if !provider.IsActive {
			return ErrProviderInactive
		}

		// 3.2. Пациент должен существовать
		exists, err := uc.patientRepo.Exists(txCtx, req.PatientID)
		if err != nil {
			return fmt.Errorf("%w: failed to check patient: %w", ErrInternal, err)
		}
		if !exists {
			return ErrPatientNotFound
		}

		// 3.3. Время должно целиком попадать в одно правило расписания
		rules, err := uc.scheduleRepo.ListApplicable(txCtx, req.ProviderID, scheduling.DayOfWeek(req.Date), req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get schedules: %w", ErrInternal, err)
		}
		if !scheduling.Covers(rules, req.Date, req.StartTime, req.EndTime) {
			uc.logger.Warn("BookAppointment: provider=%s has no schedule covering %s %s-%s",
				req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return domain.ErrProviderUnavailable
		}

		// 3.4. Предварительная проверка пересечений (строки блокируются FOR UPDATE)
		conflict, err := uc.appointmentRepo.FindOverlapping(txCtx, req.ProviderID, req.Date, req.StartTime, req.EndTime, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlapping appointments: %w", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("BookAppointment: provider=%s already booked by appointment id=%s (%s-%s)",
				req.ProviderID, conflict.ID, conflict.StartTime, conflict.EndTime)
			return domain.ErrAppointmentConflict
		}

		// 3.5. Сохраняем приём
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			PatientID:       req.PatientID,
			ProviderID:      req.ProviderID,
			AppointmentDate: domain.DateOnly(req.Date),
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Status:          domain.StatusScheduled,
			Type:            req.Type,
			Notes:           req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrOverlap):
				return domain.ErrAppointmentConflict
			case errors.Is(err, appointmentRepo.ErrReferenceNotFound):
				return fmt.Errorf("%w: patient or provider not found", domain.ErrNotFound)
			}
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.fail(err)
	}

	uc.record(outcomeCreated)
	uc.logger.Info("BookAppointment: created appointment id=%s", result.ID)

	return &Response{Appointment: result}, nil
}

// fail переводит ошибку транзакции в ошибку для вызывающего и учитывает исход в метриках
func (uc *UseCase) fail(err error) error {
	switch {
	case errors.Is(err, txmanager.ErrSerializationFailure):
		uc.logger.Warn("BookAppointment: concurrent booking detected: %v", err)
		uc.record(outcomeConflict)
		return domain.ErrAppointmentConflict
	case errors.Is(err, domain.ErrAppointmentConflict):
		uc.record(outcomeConflict)
		return err
	case errors.Is(err, domain.ErrProviderUnavailable):
		uc.record(outcomeUnavailable)
		return err
	case errors.Is(err, domain.ErrNotFound):
		uc.logger.Warn("BookAppointment: %v", err)
		uc.record(outcomeNotFound)
		return err
	}

	uc.logger.Error("BookAppointment: %v", err)
	uc.record(outcomeError)
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncBooking(outcome)
	}
}
