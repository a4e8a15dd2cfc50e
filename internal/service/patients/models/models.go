package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// Request модели

// CreatePatientRequest запрос на регистрацию пациента
type CreatePatientRequest struct {
	FirstName             string
	LastName              string
	DateOfBirth           time.Time
	Email                 *string
	Phone                 string
	Address               *string
	InsuranceID           *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// ToDomain конвертирует request в domain модель
func (r *CreatePatientRequest) ToDomain() *domain.Patient {
	return &domain.Patient{
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		DateOfBirth:           domain.DateOnly(r.DateOfBirth),
		Email:                 r.Email,
		Phone:                 r.Phone,
		Address:               r.Address,
		InsuranceID:           r.InsuranceID,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
	}
}

// UpdatePatientRequest запрос на обновление пациента
// Все поля опциональны - обновляются только переданные значения
type UpdatePatientRequest struct {
	FirstName             *string
	LastName              *string
	DateOfBirth           *time.Time
	Email                 *string
	Phone                 *string
	Address               *string
	InsuranceID           *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// ApplyTo переносит заданные поля в domain модель
func (r *UpdatePatientRequest) ApplyTo(p *domain.Patient) {
	if r.FirstName != nil {
		p.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		p.LastName = *r.LastName
	}
	if r.DateOfBirth != nil {
		p.DateOfBirth = domain.DateOnly(*r.DateOfBirth)
	}
	if r.Email != nil {
		p.Email = r.Email
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Address != nil {
		p.Address = r.Address
	}
	if r.InsuranceID != nil {
		p.InsuranceID = r.InsuranceID
	}
	if r.EmergencyContactName != nil {
		p.EmergencyContactName = r.EmergencyContactName
	}
	if r.EmergencyContactPhone != nil {
		p.EmergencyContactPhone = r.EmergencyContactPhone
	}
}

// ListPatientsRequest запрос на поиск пациентов
type ListPatientsRequest struct {
	Search *string // подстрока имени, фамилии, email или телефона
	Limit  int
	Offset int
}

// Response модели

// PatientResponse ответ с данными пациента
type PatientResponse struct {
	ID                    uuid.UUID `json:"patientId"`
	FirstName             string    `json:"firstName"`
	LastName              string    `json:"lastName"`
	DateOfBirth           string    `json:"dateOfBirth"` // "1990-05-17"
	Email                 *string   `json:"email,omitempty"`
	Phone                 string    `json:"phone"`
	Address               *string   `json:"address,omitempty"`
	InsuranceID           *string   `json:"insuranceId,omitempty"`
	EmergencyContactName  *string   `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string   `json:"emergencyContactPhone,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// PatientListResponse ответ со списком пациентов
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}

// Методы конвертации

// FromDomainPatient конвертирует domain модель в DTO
func FromDomainPatient(p *domain.Patient) *PatientResponse {
	if p == nil {
		return nil
	}

	return &PatientResponse{
		ID:                    p.ID,
		FirstName:             p.FirstName,
		LastName:              p.LastName,
		DateOfBirth:           p.DateOfBirth.Format(domain.DateFormat),
		Email:                 p.Email,
		Phone:                 p.Phone,
		Address:               p.Address,
		InsuranceID:           p.InsuranceID,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// FromDomainPatientList конвертирует список domain моделей в DTO
func FromDomainPatientList(patients []*domain.Patient) *PatientListResponse {
	resp := &PatientListResponse{
		Patients: make([]PatientResponse, 0, len(patients)),
	}

	for _, p := range patients {
		resp.Patients = append(resp.Patients, *FromDomainPatient(p))
	}

	return resp
}
