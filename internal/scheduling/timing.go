// Package scheduling holds the pure scheduling rules: timing policy,
// weekly availability, interval overlap and free slot enumeration.
package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// Timing rule violations. Each wraps domain.ErrValidation.
var (
	ErrInvalidTime      = fmt.Errorf("%w: invalid time format, expected HH:MM", domain.ErrValidation)
	ErrInvalidTimeRange = fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	ErrDurationTooShort = fmt.Errorf("%w: appointment is too short", domain.ErrValidation)
	ErrDurationTooLong  = fmt.Errorf("%w: appointment is too long", domain.ErrValidation)
	ErrTooSoon          = fmt.Errorf("%w: appointment starts too soon", domain.ErrValidation)
	ErrTooFar           = fmt.Errorf("%w: appointment is too far ahead", domain.ErrValidation)
)

// RuleError carries a human-readable message for a specific rule violation
type RuleError struct {
	Rule    error
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

func (e *RuleError) Unwrap() error {
	return e.Rule
}

func ruleError(rule error, format string, v ...interface{}) error {
	return &RuleError{Rule: rule, Message: fmt.Sprintf(format, v...)}
}

// ValidateTiming checks duration and advance-booking window of a candidate appointment.
// The start instant is date+start interpreted in now's location.
func ValidateTiming(date time.Time, start, end types.TimeString, now time.Time, policy domain.BookingPolicy) error {
	if err := errors.Join(start.Validate(), end.Validate()); err != nil {
		return ErrInvalidTime
	}
	if !end.IsAfter(start) {
		return ErrInvalidTimeRange
	}

	duration := time.Duration(start.MinutesUntil(end)) * time.Minute
	if duration < policy.MinDuration {
		return ruleError(ErrDurationTooShort, "appointment must be at least %s", humanize(policy.MinDuration))
	}
	if duration > policy.MaxDuration {
		return ruleError(ErrDurationTooLong, "appointment cannot exceed %s", humanize(policy.MaxDuration))
	}

	startAt := start.OnDate(date, now.Location())
	if startAt.Before(now.Add(policy.MinAdvance)) {
		return ruleError(ErrTooSoon, "must book at least %s in advance", humanize(policy.MinAdvance))
	}
	if startAt.After(now.Add(policy.MaxAdvance)) {
		return ruleError(ErrTooFar, "cannot book more than %s ahead", humanize(policy.MaxAdvance))
	}

	return nil
}

// humanize formats whole days, hours or minutes: "90 days", "2 hours", "15 minutes"
func humanize(d time.Duration) string {
	day := 24 * time.Hour
	switch {
	case d >= day && d%day == 0:
		return plural(int(d/day), "day")
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/time.Minute), "minute")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
