package domain

import "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"

// AvailableSlot represents a free time window that can be booked
type AvailableSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DurationMinutes returns the slot length
func (s AvailableSlot) DurationMinutes() int {
	return s.StartTime.MinutesUntil(s.EndTime)
}
