package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// ProviderSchedule is a recurring weekly availability rule of a provider.
// DayOfWeek uses the Sunday=0..Saturday=6 convention.
type ProviderSchedule struct {
	ID             uuid.UUID
	ProviderID     uuid.UUID
	DayOfWeek      int
	StartTime      types.TimeString
	EndTime        types.TimeString
	EffectiveFrom  time.Time
	EffectiveUntil *time.Time // nil = open-ended
	CreatedAt      time.Time
}

// IsEffectiveOn returns true if the rule applies on the given calendar date
func (s *ProviderSchedule) IsEffectiveOn(date time.Time) bool {
	d := DateOnly(date)
	if d.Before(DateOnly(s.EffectiveFrom)) {
		return false
	}
	return s.EffectiveUntil == nil || !d.After(DateOnly(*s.EffectiveUntil))
}

// Contains returns true if [start, end) lies entirely inside the rule's window
func (s *ProviderSchedule) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(s.StartTime) && !end.IsAfter(s.EndTime)
}

// DateOnly strips the clock part, keeping the date's location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
