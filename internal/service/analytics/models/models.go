package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// Request модели

// DailyLoadRequest запрос на загрузку по дням
type DailyLoadRequest struct {
	From *time.Time // nil = сегодня - 30 дней
	To   *time.Time // nil = сегодня + 30 дней
}

// ProviderUtilizationRequest запрос на загрузку врачей
type ProviderUtilizationRequest struct {
	Days int // 0 = 30 дней
}

// NoShowTrendRequest запрос на помесячную статистику неявок
type NoShowTrendRequest struct {
	Months int // 0 = 12 месяцев
}

// Response модели

// DailyLoadItem загрузка за один день
type DailyLoadItem struct {
	Date      string `json:"date"`
	Total     int    `json:"totalAppointments"`
	Completed int    `json:"completed"`
	Cancelled int    `json:"cancelled"`
	NoShow    int    `json:"noShows"`
}

// DailyLoadResponse ответ с загрузкой по дням
type DailyLoadResponse struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Days []DailyLoadItem `json:"days"`
}

// ProviderUtilizationItem загрузка одного врача
type ProviderUtilizationItem struct {
	ProviderID     uuid.UUID `json:"providerId"`
	ProviderName   string    `json:"providerName"`
	Specialty      string    `json:"specialty"`
	Total          int       `json:"totalAppointments"`
	Completed      int       `json:"completed"`
	Cancelled      int       `json:"cancelled"`
	NoShow         int       `json:"noShows"`
	CompletionRate float64   `json:"completionRate"`
	NoShowRate     float64   `json:"noShowRate"`
}

// ProviderUtilizationResponse ответ с загрузкой врачей
type ProviderUtilizationResponse struct {
	PeriodDays int                       `json:"periodDays"`
	Since      string                    `json:"since"`
	Providers  []ProviderUtilizationItem `json:"providers"`
}

// NoShowMonthItem статистика неявок за месяц
type NoShowMonthItem struct {
	Month      string  `json:"month"` // "2026-10"
	Total      int     `json:"totalAppointments"`
	NoShow     int     `json:"noShows"`
	NoShowRate float64 `json:"noShowRate"`
}

// NoShowTrendResponse ответ с помесячной статистикой неявок
type NoShowTrendResponse struct {
	Since  string            `json:"since"`
	Months []NoShowMonthItem `json:"months"`
}

// Методы конвертации

// FromDomainDailyLoad конвертирует загрузку по дням в DTO
func FromDomainDailyLoad(from, to time.Time, days []domain.DailyLoad) *DailyLoadResponse {
	resp := &DailyLoadResponse{
		From: from.Format(domain.DateFormat),
		To:   to.Format(domain.DateFormat),
		Days: make([]DailyLoadItem, 0, len(days)),
	}

	for _, d := range days {
		resp.Days = append(resp.Days, DailyLoadItem{
			Date:      d.Date.Format(domain.DateFormat),
			Total:     d.Total,
			Completed: d.Completed,
			Cancelled: d.Cancelled,
			NoShow:    d.NoShow,
		})
	}

	return resp
}

// FromDomainUtilization конвертирует загрузку врачей в DTO
func FromDomainUtilization(days int, since time.Time, list []domain.ProviderUtilization) *ProviderUtilizationResponse {
	resp := &ProviderUtilizationResponse{
		PeriodDays: days,
		Since:      since.Format(domain.DateFormat),
		Providers:  make([]ProviderUtilizationItem, 0, len(list)),
	}

	for _, u := range list {
		resp.Providers = append(resp.Providers, ProviderUtilizationItem{
			ProviderID:     u.ProviderID,
			ProviderName:   u.ProviderName,
			Specialty:      u.Specialty,
			Total:          u.Total,
			Completed:      u.Completed,
			Cancelled:      u.Cancelled,
			NoShow:         u.NoShow,
			CompletionRate: u.CompletionRate(),
			NoShowRate:     u.NoShowRate(),
		})
	}

	return resp
}

// FromDomainNoShows конвертирует помесячную статистику в DTO
func FromDomainNoShows(since time.Time, months []domain.MonthlyNoShows) *NoShowTrendResponse {
	resp := &NoShowTrendResponse{
		Since:  since.Format(domain.DateFormat),
		Months: make([]NoShowMonthItem, 0, len(months)),
	}

	for _, m := range months {
		resp.Months = append(resp.Months, NoShowMonthItem{
			Month:      m.Month.Format("2006-01"),
			Total:      m.Total,
			NoShow:     m.NoShow,
			NoShowRate: m.NoShowRate(),
		})
	}

	return resp
}
