package scheduling

import (
	"fmt"
	"time"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// Weekday numbering.
//
// Schedules store day_of_week as Sunday=0..Saturday=6, which is exactly
// time.Weekday. Clients that speak ISO-8601 (Monday=1..Sunday=7) or a
// Monday=0 convention are converted at the edge with the helpers below.

// DayOfWeek returns the stored day index (Sunday=0) of a calendar date
func DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}

// ValidDayOfWeek reports whether d is in 0..6
func ValidDayOfWeek(d int) bool {
	return d >= 0 && d <= 6
}

// FromISOWeekday converts ISO Monday=1..Sunday=7 to Sunday=0..Saturday=6
func FromISOWeekday(iso int) (int, error) {
	if iso < 1 || iso > 7 {
		return 0, fmt.Errorf("%w: ISO weekday must be 1..7, got %d", domain.ErrValidation, iso)
	}
	return iso % 7, nil
}

// ToISOWeekday converts Sunday=0..Saturday=6 to ISO Monday=1..Sunday=7
func ToISOWeekday(d int) int {
	if d == 0 {
		return 7
	}
	return d
}

// FromMondayZero converts Monday=0..Sunday=6 to Sunday=0..Saturday=6
func FromMondayZero(d int) int {
	return (d + 1) % 7
}

// ApplicableRules filters rules down to those in effect on date
func ApplicableRules(rules []*domain.ProviderSchedule, date time.Time) []*domain.ProviderSchedule {
	dow := DayOfWeek(date)

	applicable := make([]*domain.ProviderSchedule, 0, len(rules))
	for _, rule := range rules {
		if rule.DayOfWeek == dow && rule.IsEffectiveOn(date) {
			applicable = append(applicable, rule)
		}
	}
	return applicable
}

// Covers reports whether a single rule in effect on date fully contains [start, end).
// Adjacent rules are never merged: 09:00-12:00 and 12:00-15:00 do not cover 11:30-12:30.
func Covers(rules []*domain.ProviderSchedule, date time.Time, start, end types.TimeString) bool {
	for _, rule := range ApplicableRules(rules, date) {
		if rule.Contains(start, end) {
			return true
		}
	}
	return false
}
