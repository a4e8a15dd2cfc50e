package patients

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	patientRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/patient"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients/models"
)

// Service сервис для работы с пациентами
type Service struct {
	patientRepo  PatientRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса пациентов
func NewService(patientRepo PatientRepository, logger Logger) *Service {
	return &Service{
		patientRepo:  patientRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create регистрирует пациента
func (s *Service) Create(ctx context.Context, req *models.CreatePatientRequest) (*models.PatientResponse, error) {
	s.logger.Info("Create: registering patient %s %s", req.FirstName, req.LastName)

	patient := req.ToDomain()
	if err := validatePatient(patient, s.timeProvider.Now()); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.patientRepo.Create(ctx, patient)
	if err != nil {
		if errors.Is(err, patientRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email already registered")
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: patient id=%s registered", created.ID)
	return models.FromDomainPatient(created), nil
}

// GetByID получает пациента по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.PatientResponse, error) {
	patient, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainPatient(patient), nil
}

// List ищет пациентов по подстроке (без учёта регистра)
func (s *Service) List(ctx context.Context, req *models.ListPatientsRequest) (*models.PatientListResponse, error) {
	limit, offset, err := domain.NormalizePage(req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	patients, err := s.patientRepo.List(ctx, domain.PatientFilter{
		Search: req.Search,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d patients", len(patients))
	return models.FromDomainPatientList(patients), nil
}

// Update обновляет переданные поля пациента
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdatePatientRequest) (*models.PatientResponse, error) {
	s.logger.Info("Update: updating patient id=%s", id)

	// 1. Загружаем текущие данные
	patient, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	// 2. Применяем изменения и проверяем результат целиком
	req.ApplyTo(patient)
	if err := validatePatient(patient, s.timeProvider.Now()); err != nil {
		s.logger.Warn("Update: validation failed for patient id=%s: %v", id, err)
		return nil, err
	}

	// 3. Сохраняем
	updated, err := s.patientRepo.Update(ctx, patient)
	if err != nil {
		switch {
		case errors.Is(err, patientRepo.ErrPatientNotFound):
			return nil, ErrPatientNotFound
		case errors.Is(err, patientRepo.ErrDuplicateEmail):
			s.logger.Warn("Update: email already registered, patient id=%s", id)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Update: repository error for patient id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPatient(updated), nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("%s: patient id=%s not found", op, id)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("%s: repository error for patient id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return patient, nil
}
