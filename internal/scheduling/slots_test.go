package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

func booked(start, end string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.New(),
		AppointmentDate: day(2026, 10, 19),
		StartTime:       ts(start),
		EndTime:         ts(end),
		Status:          status,
	}
}

func starts(slots []domain.AvailableSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String() + "-" + s.EndTime.String()
	}
	return out
}

func TestOverlaps_HalfOpen(t *testing.T) {
	assert.True(t, Overlaps(ts("10:00"), ts("10:30"), ts("10:15"), ts("10:45")))
	assert.True(t, Overlaps(ts("10:00"), ts("11:00"), ts("10:15"), ts("10:30")))
	assert.False(t, Overlaps(ts("09:30"), ts("10:00"), ts("10:00"), ts("10:30")))
	assert.False(t, Overlaps(ts("10:30"), ts("11:00"), ts("10:00"), ts("10:30")))
}

func TestFindConflict(t *testing.T) {
	active := booked("10:00", "10:30", domain.StatusConfirmed)
	cancelled := booked("11:00", "11:30", domain.StatusCancelled)
	noShow := booked("12:00", "12:30", domain.StatusNoShow)
	appointments := []*domain.Appointment{active, cancelled, noShow}

	assert.Same(t, active, FindConflict(appointments, ts("10:15"), ts("10:45"), nil))
	assert.Nil(t, FindConflict(appointments, ts("10:30"), ts("11:00"), nil))
	assert.Nil(t, FindConflict(appointments, ts("11:00"), ts("11:30"), nil))
	assert.Nil(t, FindConflict(appointments, ts("12:00"), ts("12:30"), nil))
	assert.Nil(t, FindConflict(appointments, ts("10:00"), ts("10:30"), &active.ID))
}

func TestFreeSlots_ReferenceCase(t *testing.T) {
	rules := []*domain.ProviderSchedule{mondayRule("09:00", "12:00")}
	appointments := []*domain.Appointment{booked("10:00", "10:30", domain.StatusScheduled)}

	slots, err := FreeSlots(rules, appointments, SlotQuery{Date: day(2026, 10, 19), DurationMinutes: 30})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-09:30", "09:30-10:00", "10:30-11:00", "11:00-11:30", "11:30-12:00"}, starts(slots))
}

func TestFreeSlots_CancelledAppointmentsFreeTheirTime(t *testing.T) {
	rules := []*domain.ProviderSchedule{mondayRule("09:00", "10:00")}
	appointments := []*domain.Appointment{
		booked("09:00", "09:30", domain.StatusCancelled),
		booked("09:30", "10:00", domain.StatusNoShow),
	}

	slots, err := FreeSlots(rules, appointments, SlotQuery{Date: day(2026, 10, 19), DurationMinutes: 30})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-09:30", "09:30-10:00"}, starts(slots))
}

func TestFreeSlots_PartialOverlapBlocksSlot(t *testing.T) {
	rules := []*domain.ProviderSchedule{mondayRule("09:00", "11:00")}
	appointments := []*domain.Appointment{booked("09:45", "10:15", domain.StatusConfirmed)}

	slots, err := FreeSlots(rules, appointments, SlotQuery{Date: day(2026, 10, 19), DurationMinutes: 30})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-09:30", "10:30-11:00"}, starts(slots))
}

func TestFreeSlots_SlotMustFitInsideRule(t *testing.T) {
	rules := []*domain.ProviderSchedule{mondayRule("09:00", "10:10")}

	slots, err := FreeSlots(rules, nil, SlotQuery{Date: day(2026, 10, 19), DurationMinutes: 30})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-09:30", "09:30-10:00"}, starts(slots))
}

func TestFreeSlots_AdjacentRulesAreNotMerged(t *testing.T) {
	rules := []*domain.ProviderSchedule{
		mondayRule("10:00", "11:00"),
		mondayRule("09:00", "10:00"),
	}

	slots, err := FreeSlots(rules, nil, SlotQuery{Date: day(2026, 10, 19), DurationMinutes: 45})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-09:45", "10:00-10:45"}, starts(slots))
}

func TestFreeSlots_OverlappingRulesYieldNonOverlappingSlots(t *testing.T) {
	rules := []*domain.ProviderSchedule{
		mondayRule("09:00", "11:00"),
		mondayRule("10:15", "11:15"),
	}

	slots, err := FreeSlots(rules, nil, SlotQuery{Date: day(2026, 10, 19), DurationMinutes: 30})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-09:30", "09:30-10:00", "10:00-10:30", "10:30-11:00"}, starts(slots))
}

func TestFreeSlots_NotBefore(t *testing.T) {
	rules := []*domain.ProviderSchedule{mondayRule("09:00", "12:00")}
	appointments := []*domain.Appointment{booked("10:00", "10:30", domain.StatusScheduled)}
	notBefore := time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)

	slots, err := FreeSlots(rules, appointments, SlotQuery{
		Date:            day(2026, 10, 19),
		DurationMinutes: 30,
		NotBefore:       notBefore,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"10:30-11:00", "11:00-11:30", "11:30-12:00"}, starts(slots))
}

func TestFreeSlots_NoRuleForDay(t *testing.T) {
	rules := []*domain.ProviderSchedule{mondayRule("09:00", "12:00")}

	slots, err := FreeSlots(rules, nil, SlotQuery{Date: day(2026, 10, 20), DurationMinutes: 30})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFreeSlots_EndOfDay(t *testing.T) {
	rules := []*domain.ProviderSchedule{mondayRule("23:00", "23:59")}

	slots, err := FreeSlots(rules, nil, SlotQuery{Date: day(2026, 10, 19), DurationMinutes: 30})

	require.NoError(t, err)
	assert.Equal(t, []string{"23:00-23:30"}, starts(slots))
}

func TestFreeSlots_InvalidDuration(t *testing.T) {
	for _, d := range []int{0, 10, 121} {
		_, err := FreeSlots(nil, nil, SlotQuery{Date: day(2026, 10, 19), DurationMinutes: d})
		assert.ErrorIs(t, err, ErrInvalidSlotDuration)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}
