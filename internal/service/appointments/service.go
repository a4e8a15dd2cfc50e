package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	appointmentRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/appointment"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/appointments/models"
)

// Service сервис для чтения приёмов
// Запись, смена статуса и перенос выполняются соответствующими use case
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса приёмов
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает приём по ID вместе с именами пациента и врача
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	details, err := s.appointmentRepo.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDetails(details), nil
}

// List получает приёмы с фильтрацией по пациенту, врачу, дате и статусу
// Сортировка: сначала более поздние
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	list, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments (limit=%d, offset=%d)", len(list), filter.Limit, filter.Offset)
	return models.FromDomainDetailsList(list, filter), nil
}
