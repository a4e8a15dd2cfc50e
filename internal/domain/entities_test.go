package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/ptr"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProviderSchedule_IsEffectiveOn(t *testing.T) {
	open := ProviderSchedule{EffectiveFrom: date(2026, 10, 1)}
	assert.False(t, open.IsEffectiveOn(date(2026, 9, 30)))
	assert.True(t, open.IsEffectiveOn(date(2026, 10, 1)))
	assert.True(t, open.IsEffectiveOn(date(2030, 1, 1)))

	bounded := ProviderSchedule{EffectiveFrom: date(2026, 10, 1), EffectiveUntil: ptr.Ptr(date(2026, 10, 31))}
	assert.True(t, bounded.IsEffectiveOn(time.Date(2026, 10, 31, 18, 0, 0, 0, time.UTC)))
	assert.False(t, bounded.IsEffectiveOn(date(2026, 11, 1)))
}

func TestProviderSchedule_Contains(t *testing.T) {
	rule := ProviderSchedule{StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("12:00")}

	assert.True(t, rule.Contains(types.MustTimeString("09:00"), types.MustTimeString("12:00")))
	assert.True(t, rule.Contains(types.MustTimeString("10:00"), types.MustTimeString("10:30")))
	assert.False(t, rule.Contains(types.MustTimeString("08:45"), types.MustTimeString("09:15")))
	assert.False(t, rule.Contains(types.MustTimeString("11:45"), types.MustTimeString("12:15")))
}

func TestAppointment_CanBeRescheduled(t *testing.T) {
	a := Appointment{Status: StatusConfirmed}
	assert.True(t, a.CanBeRescheduled())

	a.Status = StatusCheckedIn
	assert.False(t, a.CanBeRescheduled())
}

func TestAppointmentType_IsValid(t *testing.T) {
	assert.True(t, TypeRoutine.IsValid())
	assert.False(t, AppointmentType("dental").IsValid())
}

func TestNewVisitStub(t *testing.T) {
	a := &Appointment{
		ID:              uuid.New(),
		PatientID:       uuid.New(),
		ProviderID:      uuid.New(),
		AppointmentDate: date(2026, 10, 21),
	}

	v := NewVisitStub(a)
	assert.Equal(t, a.ID, v.AppointmentID)
	assert.Equal(t, a.PatientID, v.PatientID)
	assert.Equal(t, a.ProviderID, v.ProviderID)
	assert.Equal(t, a.AppointmentDate, v.VisitDate)
	assert.False(t, v.FollowUpRequired)
}

func TestVisit_ValidateFollowUp(t *testing.T) {
	v := Visit{VisitDate: date(2026, 10, 21), FollowUpRequired: true}
	assert.ErrorIs(t, v.ValidateFollowUp(), ErrValidation)

	v.FollowUpDate = ptr.Ptr(date(2026, 10, 20))
	assert.ErrorIs(t, v.ValidateFollowUp(), ErrValidation)

	v.FollowUpDate = ptr.Ptr(date(2026, 11, 4))
	assert.NoError(t, v.ValidateFollowUp())
}

func TestPrescriptions_ScanValue(t *testing.T) {
	p := Prescriptions{{Medication: "amoxicillin", Dosage: "500mg", Frequency: "3x daily"}}

	v, err := p.Value()
	require.NoError(t, err)

	var scanned Prescriptions
	require.NoError(t, scanned.Scan([]byte(v.(string))))
	assert.Equal(t, p, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)

	var empty Prescriptions
	v, err = empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestProviderUtilization_Rates(t *testing.T) {
	u := ProviderUtilization{Total: 3, Completed: 2, NoShow: 1}
	assert.Equal(t, 66.67, u.CompletionRate())
	assert.Equal(t, 33.33, u.NoShowRate())

	assert.Zero(t, ProviderUtilization{}.NoShowRate())
}

func TestNormalizePage(t *testing.T) {
	limit, offset, err := NormalizePage(0, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultAppointmentListLimit, limit)
	assert.Equal(t, 0, offset)

	limit, _, err = NormalizePage(MaxAppointmentListLimit, 5)
	require.NoError(t, err)
	assert.Equal(t, MaxAppointmentListLimit, limit)

	for _, bad := range [][2]int{{-1, 0}, {MaxAppointmentListLimit + 1, 0}, {10, -1}} {
		_, _, err := NormalizePage(bad[0], bad[1])
		assert.ErrorIs(t, err, ErrValidation, "limit=%d offset=%d", bad[0], bad[1])
	}
}
