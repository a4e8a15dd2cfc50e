package visits

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	appointmentRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/appointment"
	visitRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/visit"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/visits/models"
)

// Service сервис для работы с визитами
// Заготовка визита создаётся автоматически при завершении приёма (transition_status),
// здесь - явное создание и заполнение клинических данных
type Service struct {
	visitRepo       VisitRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(visitRepo VisitRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		visitRepo:       visitRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create создает визит для завершённого приёма
func (s *Service) Create(ctx context.Context, req *models.CreateVisitRequest) (*models.VisitResponse, error) {
	s.logger.Info("Create: creating visit for appointment=%s", req.AppointmentID)

	// 1. Приём должен существовать и быть завершён
	appointment, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Create: appointment id=%s not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Create: failed to get appointment id=%s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	if appointment.Status != domain.StatusCompleted {
		s.logger.Warn("Create: appointment id=%s has status %s", appointment.ID, appointment.Status)
		return nil, ErrAppointmentNotCompleted
	}

	// 2. Не больше одного визита на приём
	exists, err := s.visitRepo.ExistsForAppointment(ctx, appointment.ID)
	if err != nil {
		s.logger.Error("Create: failed to check visit for appointment id=%s: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Create: visit already exists for appointment id=%s", appointment.ID)
		return nil, ErrVisitExists
	}

	// 3. Собираем визит: участники берутся из приёма
	visit := domain.NewVisitStub(appointment)
	if req.VisitDate != nil {
		visit.VisitDate = domain.DateOnly(*req.VisitDate)
	}
	req.ClinicalFields.ApplyTo(visit)

	if err := visit.ValidateFollowUp(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 4. Сохраняем
	created, err := s.visitRepo.Create(ctx, visit)
	if err != nil {
		if errors.Is(err, visitRepo.ErrAlreadyExists) {
			return nil, ErrVisitExists
		}
		s.logger.Error("Create: repository error for appointment id=%s: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: visit id=%s created for appointment=%s", created.ID, appointment.ID)
	return models.FromDomainVisit(created), nil
}

// GetByID получает визит по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.VisitResponse, error) {
	visit, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainVisit(visit), nil
}

// List получает визиты пациента и/или врача, сначала последние
func (s *Service) List(ctx context.Context, req *models.ListVisitsRequest) (*models.VisitListResponse, error) {
	limit, offset, err := domain.NormalizePage(req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	visits, err := s.visitRepo.List(ctx, domain.VisitFilter{
		PatientID:  req.PatientID,
		ProviderID: req.ProviderID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d visits", len(visits))
	return models.FromDomainVisitList(visits), nil
}

// Update обновляет клинические данные визита
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateVisitRequest) (*models.VisitResponse, error) {
	s.logger.Info("Update: updating visit id=%s", id)

	visit, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	req.ClinicalFields.ApplyTo(visit)
	if err := visit.ValidateFollowUp(); err != nil {
		s.logger.Warn("Update: validation failed for visit id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.visitRepo.Update(ctx, visit)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			return nil, ErrVisitNotFound
		}
		s.logger.Error("Update: repository error for visit id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVisit(updated), nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Visit, error) {
	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("%s: visit id=%s not found", op, id)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("%s: repository error for visit id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return visit, nil
}
