package domain

import "time"

// Default booking policy values
const (
	DefaultMinDurationMinutes    = 15
	DefaultMaxDurationMinutes    = 120
	DefaultMinAdvanceMinutes     = 120
	DefaultMaxAdvanceDays        = 90
	DefaultSlotDurationMinutes   = 30
	DefaultAppointmentListLimit  = 100
	MaxAppointmentListLimit      = 1000
	DefaultUtilizationPeriodDays = 30
	DefaultDailyLoadWindowDays   = 30
	MaxCancellationReasonLength  = 500
	MaxNotesLength               = 2000
)

// Slot duration bounds accepted by the slot finder
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 120
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingPolicy holds the timing rules applied to new and rescheduled appointments
type BookingPolicy struct {
	MinDuration time.Duration
	MaxDuration time.Duration
	MinAdvance  time.Duration
	MaxAdvance  time.Duration
	// SlotDuration is used by the slot finder when the caller does not pass one
	SlotDuration time.Duration
}

// DefaultBookingPolicy returns the standard policy: 15m..2h appointments
// booked between 2 hours and 90 days ahead
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		MinDuration:  DefaultMinDurationMinutes * time.Minute,
		MaxDuration:  DefaultMaxDurationMinutes * time.Minute,
		MinAdvance:   DefaultMinAdvanceMinutes * time.Minute,
		MaxAdvance:   DefaultMaxAdvanceDays * 24 * time.Hour,
		SlotDuration: DefaultSlotDurationMinutes * time.Minute,
	}
}
