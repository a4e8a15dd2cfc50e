package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка приёмов
// Все фильтры опциональны
type ListAppointmentsRequest struct {
	PatientID  *uuid.UUID
	ProviderID *uuid.UUID
	Date       *time.Time
	Status     *string
	Limit      int // 0 = по умолчанию (100)
	Offset     int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentFilter, error) {
	limit, offset, err := domain.NormalizePage(r.Limit, r.Offset)
	if err != nil {
		return domain.AppointmentFilter{}, err
	}

	filter := domain.AppointmentFilter{
		PatientID:  r.PatientID,
		ProviderID: r.ProviderID,
		Limit:      limit,
		Offset:     offset,
	}

	if r.Date != nil {
		d := domain.DateOnly(*r.Date)
		filter.Date = &d
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := domain.ParseStatus(*r.Status)
		if err != nil {
			return domain.AppointmentFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными приёма
type AppointmentResponse struct {
	ID                 uuid.UUID `json:"appointmentId"`
	PatientID          uuid.UUID `json:"patientId"`
	ProviderID         uuid.UUID `json:"providerId"`
	AppointmentDate    string    `json:"appointmentDate"` // "2026-10-19"
	StartTime          string    `json:"startTime"`       // "10:00"
	EndTime            string    `json:"endTime"`         // "10:30"
	DurationMinutes    int       `json:"durationMinutes"`
	Status             string    `json:"status"`
	AppointmentType    string    `json:"appointmentType"`
	Notes              *string   `json:"notes,omitempty"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`

	// Денормализованные данные (только для чтения по id и в списках)
	PatientName       string `json:"patientName,omitempty"`
	ProviderName      string `json:"providerName,omitempty"`
	ProviderSpecialty string `json:"providerSpecialty,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком приёмов
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                 a.ID,
		PatientID:          a.PatientID,
		ProviderID:         a.ProviderID,
		AppointmentDate:    a.AppointmentDate.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		EndTime:            a.EndTime.String(),
		DurationMinutes:    a.DurationMinutes(),
		Status:             a.Status.String(),
		AppointmentType:    string(a.Type),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainDetails конвертирует приём с именами участников в DTO
func FromDomainDetails(d *domain.AppointmentDetails) *AppointmentResponse {
	if d == nil {
		return nil
	}

	resp := FromDomainAppointment(&d.Appointment)
	resp.PatientName = d.PatientName
	resp.ProviderName = d.ProviderName
	resp.ProviderSpecialty = d.ProviderSpecialty

	return resp
}

// FromDomainDetailsList конвертирует список в DTO
func FromDomainDetailsList(list []*domain.AppointmentDetails, filter domain.AppointmentFilter) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	}

	for _, d := range list {
		resp.Appointments = append(resp.Appointments, *FromDomainDetails(d))
	}

	return resp
}
