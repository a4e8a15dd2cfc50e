package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyLoad appointment counts for one calendar day
type DailyLoad struct {
	Date      time.Time
	Total     int
	Completed int
	Cancelled int
	NoShow    int
}

// ProviderUtilization appointment counts for one provider over a period
type ProviderUtilization struct {
	ProviderID   uuid.UUID
	ProviderName string
	Specialty    string
	Total        int
	Completed    int
	Cancelled    int
	NoShow       int
}

// CompletionRate returns the share of completed appointments in percent
func (u ProviderUtilization) CompletionRate() float64 {
	return percent(u.Completed, u.Total)
}

// NoShowRate returns the share of no-shows in percent
func (u ProviderUtilization) NoShowRate() float64 {
	return percent(u.NoShow, u.Total)
}

// MonthlyNoShows no-show statistics for one calendar month
type MonthlyNoShows struct {
	Month  time.Time // first day of the month
	Total  int
	NoShow int
}

// NoShowRate returns the share of no-shows in percent
func (m MonthlyNoShows) NoShowRate() float64 {
	return percent(m.NoShow, m.Total)
}

// percent rounds part/total*100 to two decimals
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(part) / float64(total) * 100
	return float64(int64(rate*100+0.5)) / 100
}
