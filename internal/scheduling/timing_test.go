package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// Sunday, 2026-10-18 10:00 UTC
var now = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ts(s string) types.TimeString {
	return types.MustTimeString(s)
}

func TestValidateTiming(t *testing.T) {
	policy := domain.DefaultBookingPolicy()

	tests := []struct {
		name    string
		date    time.Time
		start   string
		end     string
		wantErr error
		wantMsg string
	}{
		{name: "valid", date: day(2026, 10, 21), start: "10:00", end: "10:30"},
		{name: "exactly min duration", date: day(2026, 10, 21), start: "10:00", end: "10:15"},
		{name: "exactly max duration", date: day(2026, 10, 21), start: "10:00", end: "12:00"},
		{
			name: "ten minutes", date: day(2026, 10, 21), start: "10:00", end: "10:10",
			wantErr: ErrDurationTooShort, wantMsg: "appointment must be at least 15 minutes",
		},
		{
			name: "three hours", date: day(2026, 10, 21), start: "09:00", end: "12:00",
			wantErr: ErrDurationTooLong, wantMsg: "appointment cannot exceed 2 hours",
		},
		{
			name: "one hour from now", date: day(2026, 10, 18), start: "11:00", end: "11:30",
			wantErr: ErrTooSoon, wantMsg: "must book at least 2 hours in advance",
		},
		{name: "exactly two hours from now", date: day(2026, 10, 18), start: "12:00", end: "12:30"},
		{name: "exactly 90 days ahead", date: day(2027, 1, 16), start: "10:00", end: "10:30"},
		{
			name: "91 days ahead", date: day(2027, 1, 17), start: "10:00", end: "10:30",
			wantErr: ErrTooFar, wantMsg: "cannot book more than 90 days ahead",
		},
		{name: "in the past", date: day(2026, 10, 1), start: "10:00", end: "10:30", wantErr: ErrTooSoon},
		{name: "end before start", date: day(2026, 10, 21), start: "11:00", end: "10:00", wantErr: ErrInvalidTimeRange},
		{name: "end equals start", date: day(2026, 10, 21), start: "11:00", end: "11:00", wantErr: ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTiming(tt.date, ts(tt.start), ts(tt.end), now, policy)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
				assert.Equal(t, tt.wantMsg, domain.Message(err))
			}
		})
	}
}

func TestValidateTiming_MalformedTime(t *testing.T) {
	err := ValidateTiming(day(2026, 10, 21), types.TimeString("25:00"), ts("10:00"), now, domain.DefaultBookingPolicy())
	assert.ErrorIs(t, err, ErrInvalidTime)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidateTiming_CustomPolicy(t *testing.T) {
	policy := domain.BookingPolicy{
		MinDuration: 30 * time.Minute,
		MaxDuration: time.Hour,
		MinAdvance:  24 * time.Hour,
		MaxAdvance:  7 * 24 * time.Hour,
	}

	err := ValidateTiming(day(2026, 10, 21), ts("10:00"), ts("10:15"), now, policy)
	assert.EqualError(t, err, "appointment must be at least 30 minutes")

	err = ValidateTiming(day(2026, 10, 18), ts("16:00"), ts("16:30"), now, policy)
	assert.EqualError(t, err, "must book at least 1 day in advance")

	err = ValidateTiming(day(2026, 10, 26), ts("10:00"), ts("10:30"), now, policy)
	assert.EqualError(t, err, "cannot book more than 7 days ahead")
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "15 minutes", humanize(15*time.Minute))
	assert.Equal(t, "90 minutes", humanize(90*time.Minute))
	assert.Equal(t, "1 hour", humanize(time.Hour))
	assert.Equal(t, "2 hours", humanize(2*time.Hour))
	assert.Equal(t, "90 days", humanize(90*24*time.Hour))
}
