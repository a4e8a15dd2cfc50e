package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// Request модели

// ClinicalFields клинические данные визита
// Все поля опциональны - при обновлении меняются только переданные
type ClinicalFields struct {
	ChiefComplaint   *string
	Diagnosis        *string
	TreatmentPlan    *string
	Prescriptions    *domain.Prescriptions
	Notes            *string
	FollowUpRequired *bool
	FollowUpDate     *time.Time
}

// ApplyTo переносит заданные поля в domain модель
func (f *ClinicalFields) ApplyTo(v *domain.Visit) {
	if f.ChiefComplaint != nil {
		v.ChiefComplaint = f.ChiefComplaint
	}
	if f.Diagnosis != nil {
		v.Diagnosis = f.Diagnosis
	}
	if f.TreatmentPlan != nil {
		v.TreatmentPlan = f.TreatmentPlan
	}
	if f.Prescriptions != nil {
		v.Prescriptions = *f.Prescriptions
	}
	if f.Notes != nil {
		v.Notes = f.Notes
	}
	if f.FollowUpRequired != nil {
		v.FollowUpRequired = *f.FollowUpRequired
	}
	if f.FollowUpDate != nil {
		d := domain.DateOnly(*f.FollowUpDate)
		v.FollowUpDate = &d
	}
}

// CreateVisitRequest запрос на создание визита по завершённому приёму
type CreateVisitRequest struct {
	AppointmentID uuid.UUID
	VisitDate     *time.Time // nil = дата приёма
	ClinicalFields
}

// UpdateVisitRequest запрос на обновление клинических данных визита
type UpdateVisitRequest struct {
	ClinicalFields
}

// ListVisitsRequest запрос на список визитов
type ListVisitsRequest struct {
	PatientID  *uuid.UUID
	ProviderID *uuid.UUID
	Limit      int
	Offset     int
}

// Response модели

// VisitResponse ответ с данными визита
type VisitResponse struct {
	ID               uuid.UUID             `json:"visitId"`
	AppointmentID    uuid.UUID             `json:"appointmentId"`
	PatientID        uuid.UUID             `json:"patientId"`
	ProviderID       uuid.UUID             `json:"providerId"`
	VisitDate        string                `json:"visitDate"`
	ChiefComplaint   *string               `json:"chiefComplaint,omitempty"`
	Diagnosis        *string               `json:"diagnosis,omitempty"`
	TreatmentPlan    *string               `json:"treatmentPlan,omitempty"`
	Prescriptions    []domain.Prescription `json:"prescriptions"`
	Notes            *string               `json:"notes,omitempty"`
	FollowUpRequired bool                  `json:"followUpRequired"`
	FollowUpDate     *string               `json:"followUpDate,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

// VisitListResponse ответ со списком визитов
type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
}

// Методы конвертации

// FromDomainVisit конвертирует domain модель в DTO
func FromDomainVisit(v *domain.Visit) *VisitResponse {
	if v == nil {
		return nil
	}

	resp := &VisitResponse{
		ID:               v.ID,
		AppointmentID:    v.AppointmentID,
		PatientID:        v.PatientID,
		ProviderID:       v.ProviderID,
		VisitDate:        v.VisitDate.Format(domain.DateFormat),
		ChiefComplaint:   v.ChiefComplaint,
		Diagnosis:        v.Diagnosis,
		TreatmentPlan:    v.TreatmentPlan,
		Prescriptions:    []domain.Prescription(v.Prescriptions),
		Notes:            v.Notes,
		FollowUpRequired: v.FollowUpRequired,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}

	if resp.Prescriptions == nil {
		resp.Prescriptions = []domain.Prescription{}
	}

	if v.FollowUpDate != nil {
		d := v.FollowUpDate.Format(domain.DateFormat)
		resp.FollowUpDate = &d
	}

	return resp
}

// FromDomainVisitList конвертирует список domain моделей в DTO
func FromDomainVisitList(visits []*domain.Visit) *VisitListResponse {
	resp := &VisitListResponse{
		Visits: make([]VisitResponse, 0, len(visits)),
	}

	for _, v := range visits {
		resp.Visits = append(resp.Visits, *FromDomainVisit(v))
	}

	return resp
}
