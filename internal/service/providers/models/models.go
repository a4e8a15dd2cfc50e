package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// Request модели

// CreateProviderRequest запрос на добавление врача
type CreateProviderRequest struct {
	FirstName     string
	LastName      string
	Specialty     string
	LicenseNumber string
	Email         string
	Phone         string
	IsActive      *bool // nil = активен
}

// ToDomain конвертирует request в domain модель
func (r *CreateProviderRequest) ToDomain() *domain.Provider {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &domain.Provider{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Specialty:     r.Specialty,
		LicenseNumber: r.LicenseNumber,
		Email:         r.Email,
		Phone:         r.Phone,
		IsActive:      active,
	}
}

// UpdateProviderRequest запрос на обновление врача
// Все поля опциональны - обновляются только переданные значения
type UpdateProviderRequest struct {
	FirstName     *string
	LastName      *string
	Specialty     *string
	LicenseNumber *string
	Email         *string
	Phone         *string
	IsActive      *bool
}

// ApplyTo переносит заданные поля в domain модель
func (r *UpdateProviderRequest) ApplyTo(p *domain.Provider) {
	if r.FirstName != nil {
		p.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		p.LastName = *r.LastName
	}
	if r.Specialty != nil {
		p.Specialty = *r.Specialty
	}
	if r.LicenseNumber != nil {
		p.LicenseNumber = *r.LicenseNumber
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
}

// ListProvidersRequest запрос на список врачей
type ListProvidersRequest struct {
	Specialty *string // подстрока специальности
	IsActive  *bool
	Limit     int
	Offset    int
}

// CreateScheduleRequest запрос на добавление правила расписания
type CreateScheduleRequest struct {
	DayOfWeek      int // 0 = воскресенье .. 6 = суббота
	StartTime      types.TimeString
	EndTime        types.TimeString
	EffectiveFrom  *time.Time // nil = с сегодняшнего дня
	EffectiveUntil *time.Time // nil = бессрочно
}

// Response модели

// ProviderResponse ответ с данными врача
type ProviderResponse struct {
	ID            uuid.UUID `json:"providerId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Specialty     string    `json:"specialty"`
	LicenseNumber string    `json:"licenseNumber"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProviderListResponse ответ со списком врачей
type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// ScheduleResponse ответ с правилом расписания
type ScheduleResponse struct {
	ID             uuid.UUID `json:"scheduleId"`
	ProviderID     uuid.UUID `json:"providerId"`
	DayOfWeek      int       `json:"dayOfWeek"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	EffectiveFrom  string    `json:"effectiveFrom"`
	EffectiveUntil *string   `json:"effectiveUntil,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ScheduleListResponse ответ со списком правил
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// Методы конвертации

// FromDomainProvider конвертирует domain модель в DTO
func FromDomainProvider(p *domain.Provider) *ProviderResponse {
	if p == nil {
		return nil
	}

	return &ProviderResponse{
		ID:            p.ID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Specialty:     p.Specialty,
		LicenseNumber: p.LicenseNumber,
		Email:         p.Email,
		Phone:         p.Phone,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainProviderList конвертирует список domain моделей в DTO
func FromDomainProviderList(providers []*domain.Provider) *ProviderListResponse {
	resp := &ProviderListResponse{
		Providers: make([]ProviderResponse, 0, len(providers)),
	}

	for _, p := range providers {
		resp.Providers = append(resp.Providers, *FromDomainProvider(p))
	}

	return resp
}

// FromDomainSchedule конвертирует правило расписания в DTO
func FromDomainSchedule(s *domain.ProviderSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ID:            s.ID,
		ProviderID:    s.ProviderID,
		DayOfWeek:     s.DayOfWeek,
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		EffectiveFrom: s.EffectiveFrom.Format(domain.DateFormat),
		CreatedAt:     s.CreatedAt,
	}

	if s.EffectiveUntil != nil {
		until := s.EffectiveUntil.Format(domain.DateFormat)
		resp.EffectiveUntil = &until
	}

	return resp
}

// FromDomainScheduleList конвертирует список правил в DTO
func FromDomainScheduleList(schedules []*domain.ProviderSchedule) *ScheduleListResponse {
	resp := &ScheduleListResponse{
		Schedules: make([]ScheduleResponse, 0, len(schedules)),
	}

	for _, s := range schedules {
		resp.Schedules = append(resp.Schedules, *FromDomainSchedule(s))
	}

	return resp
}
