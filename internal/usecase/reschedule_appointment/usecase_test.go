package reschedule_appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	appointmentRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/appointment"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/ptr"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/txmanager"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Appointment)
	return a, args.Error(1)
}

func (m *mockAppointmentRepo) FindOverlapping(ctx context.Context, providerID uuid.UUID, date time.Time, start, end types.TimeString, excludeID *uuid.UUID) (*domain.Appointment, error) {
	args := m.Called(ctx, providerID, date, start, end, excludeID)
	a, _ := args.Get(0).(*domain.Appointment)
	return a, args.Error(1)
}

func (m *mockAppointmentRepo) Reschedule(ctx context.Context, id uuid.UUID, date time.Time, start, end types.TimeString, notes *string) (*domain.Appointment, error) {
	args := m.Called(ctx, id, date, start, end, notes)
	a, _ := args.Get(0).(*domain.Appointment)
	return a, args.Error(1)
}

type mockScheduleRepo struct {
	mock.Mock
}

func (m *mockScheduleRepo) ListApplicable(ctx context.Context, providerID uuid.UUID, dayOfWeek int, date time.Time) ([]*domain.ProviderSchedule, error) {
	args := m.Called(ctx, providerID, dayOfWeek, date)
	rules, _ := args.Get(0).([]*domain.ProviderSchedule)
	return rules, args.Error(1)
}

// passTxManager выполняет fn без транзакции
type passTxManager struct {
	err error
}

func (m *passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	now           = time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	monday        = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	wednesday     = time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	appointmentID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	providerID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func current(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              appointmentID,
		PatientID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		ProviderID:      providerID,
		AppointmentDate: monday,
		StartTime:       types.MustTimeString("10:00"),
		EndTime:         types.MustTimeString("10:30"),
		Status:          status,
		Type:            domain.TypeRoutine,
	}
}

func rule(dow int, start, end string) *domain.ProviderSchedule {
	return &domain.ProviderSchedule{
		ProviderID:    providerID,
		DayOfWeek:     dow,
		StartTime:     types.MustTimeString(start),
		EndTime:       types.MustTimeString(end),
		EffectiveFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func ts(s string) *types.TimeString {
	return ptr.Ptr(types.MustTimeString(s))
}

var selfExcluded = mock.MatchedBy(func(id *uuid.UUID) bool {
	return id != nil && *id == appointmentID
})

type fixture struct {
	appointments *mockAppointmentRepo
	schedules    *mockScheduleRepo
	tx           *passTxManager
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appointments: &mockAppointmentRepo{},
		schedules:    &mockScheduleRepo{},
		tx:           &passTxManager{},
	}
	f.uc = NewUseCase(f.appointments, f.schedules, f.tx, domain.DefaultBookingPolicy(), nopLogger{})
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func moved(date time.Time, start, end string) *domain.Appointment {
	a := current(domain.StatusScheduled)
	a.AppointmentDate = date
	a.StartTime = types.MustTimeString(start)
	a.EndTime = types.MustTimeString(end)
	return a
}

func TestExecute_MovesWithinSameDay(t *testing.T) {
	f := newFixture()
	f.appointments.On("GetByIDForUpdate", mock.Anything, appointmentID).Return(current(domain.StatusScheduled), nil)
	f.schedules.On("ListApplicable", mock.Anything, providerID, 1, monday).
		Return([]*domain.ProviderSchedule{rule(1, "09:00", "12:00")}, nil)
	f.appointments.On("FindOverlapping", mock.Anything, providerID, monday,
		types.MustTimeString("10:15"), types.MustTimeString("10:45"), selfExcluded).Return(nil, nil)
	f.appointments.On("Reschedule", mock.Anything, appointmentID, monday,
		types.MustTimeString("10:15"), types.MustTimeString("10:45"), (*string)(nil)).
		Return(moved(monday, "10:15", "10:45"), nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: appointmentID,
		StartTime:     ts("10:15"),
		EndTime:       ts("10:45"),
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:15"), resp.Appointment.StartTime)
	f.appointments.AssertExpectations(t)
}

func TestExecute_MovesToAnotherDayKeepingTime(t *testing.T) {
	f := newFixture()
	f.appointments.On("GetByIDForUpdate", mock.Anything, appointmentID).Return(current(domain.StatusConfirmed), nil)
	f.schedules.On("ListApplicable", mock.Anything, providerID, 3, wednesday).
		Return([]*domain.ProviderSchedule{rule(3, "08:00", "16:00")}, nil)
	f.appointments.On("FindOverlapping", mock.Anything, providerID, wednesday,
		types.MustTimeString("10:00"), types.MustTimeString("10:30"), selfExcluded).Return(nil, nil)
	f.appointments.On("Reschedule", mock.Anything, appointmentID, wednesday,
		types.MustTimeString("10:00"), types.MustTimeString("10:30"), (*string)(nil)).
		Return(moved(wednesday, "10:00", "10:30"), nil)

	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: appointmentID, Date: ptr.Ptr(wednesday)})

	require.NoError(t, err)
	assert.True(t, resp.Appointment.AppointmentDate.Equal(wednesday))
}

func TestExecute_NotesOnlySkipsTimeChecks(t *testing.T) {
	f := newFixture()
	done := current(domain.StatusCompleted)
	f.appointments.On("GetByIDForUpdate", mock.Anything, appointmentID).Return(done, nil)
	f.appointments.On("Reschedule", mock.Anything, appointmentID, monday,
		done.StartTime, done.EndTime, ptr.Ptr("bring lab results")).Return(done, nil)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: appointmentID, Notes: ptr.Ptr("bring lab results")})

	require.NoError(t, err)
	f.schedules.AssertNotCalled(t, "ListApplicable", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_NothingToUpdate(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: appointmentID})

	assert.ErrorIs(t, err, ErrNothingToUpdate)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExecute_NotReschedulable(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusCheckedIn, domain.StatusInProgress, domain.StatusCompleted,
		domain.StatusCancelled, domain.StatusNoShow,
	} {
		t.Run(status.String(), func(t *testing.T) {
			f := newFixture()
			f.appointments.On("GetByIDForUpdate", mock.Anything, appointmentID).Return(current(status), nil)

			_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: appointmentID, StartTime: ts("11:00"), EndTime: ts("11:30")})

			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			f.appointments.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_TimingRejected(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		start, end string
	}{
		{"too short", monday, "11:00", "11:10"},
		{"too long", monday, "09:00", "12:00"},
		{"too soon", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), "09:00", "09:30"},
		{"too far", time.Date(2027, 1, 18, 0, 0, 0, 0, time.UTC), "09:00", "09:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.appointments.On("GetByIDForUpdate", mock.Anything, appointmentID).Return(current(domain.StatusScheduled), nil)

			_, err := f.uc.Execute(context.Background(), &Request{
				AppointmentID: appointmentID,
				Date:          ptr.Ptr(tt.date),
				StartTime:     ts(tt.start),
				EndTime:       ts(tt.end),
			})

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestExecute_OutsideSchedule(t *testing.T) {
	f := newFixture()
	f.appointments.On("GetByIDForUpdate", mock.Anything, appointmentID).Return(current(domain.StatusScheduled), nil)
	f.schedules.On("ListApplicable", mock.Anything, providerID, 1, monday).
		Return([]*domain.ProviderSchedule{rule(1, "09:00", "12:00")}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: appointmentID, StartTime: ts("11:45"), EndTime: ts("12:15")})

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestExecute_ConflictWithAnotherAppointment(t *testing.T) {
	f := newFixture()
	f.appointments.On("GetByIDForUpdate", mock.Anything, appointmentID).Return(current(domain.StatusScheduled), nil)
	f.schedules.On("ListApplicable", mock.Anything, providerID, 1, monday).
		Return([]*domain.ProviderSchedule{rule(1, "09:00", "12:00")}, nil)
	f.appointments.On("FindOverlapping", mock.Anything, providerID, monday, mock.Anything, mock.Anything, selfExcluded).
		Return(&domain.Appointment{ID: uuid.New(), StartTime: "11:00", EndTime: "11:30"}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: appointmentID, StartTime: ts("11:00"), EndTime: ts("11:30")})

	assert.ErrorIs(t, err, domain.ErrAppointmentConflict)
	assert.Equal(t, 409, domain.HTTPStatus(err))
}

func TestExecute_StorageGuardAndSerializationAreConflicts(t *testing.T) {
	tests := []struct {
		name      string
		repoErr   error
		commitErr error
	}{
		{"exclusion violation", fmt.Errorf("%w: Reschedule - execute update", appointmentRepo.ErrOverlap), nil},
		{"serialization failure", nil, fmt.Errorf("%w: commit", txmanager.ErrSerializationFailure)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.tx.err = tt.commitErr
			f.appointments.On("GetByIDForUpdate", mock.Anything, appointmentID).Return(current(domain.StatusScheduled), nil)
			f.schedules.On("ListApplicable", mock.Anything, providerID, 1, monday).
				Return([]*domain.ProviderSchedule{rule(1, "09:00", "12:00")}, nil)
			f.appointments.On("FindOverlapping", mock.Anything, providerID, monday, mock.Anything, mock.Anything, selfExcluded).
				Return(nil, nil)
			if tt.repoErr != nil {
				f.appointments.On("Reschedule", mock.Anything, appointmentID, monday, mock.Anything, mock.Anything, (*string)(nil)).
					Return(nil, tt.repoErr)
			} else {
				f.appointments.On("Reschedule", mock.Anything, appointmentID, monday, mock.Anything, mock.Anything, (*string)(nil)).
					Return(moved(monday, "11:00", "11:30"), nil)
			}

			_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: appointmentID, StartTime: ts("11:00"), EndTime: ts("11:30")})

			assert.ErrorIs(t, err, domain.ErrAppointmentConflict)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()
	f.appointments.On("GetByIDForUpdate", mock.Anything, appointmentID).Return(nil, appointmentRepo.ErrAppointmentNotFound)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: appointmentID, Notes: ptr.Ptr("x")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_StorageFailureIsInternal(t *testing.T) {
	f := newFixture()
	f.appointments.On("GetByIDForUpdate", mock.Anything, appointmentID).Return(nil, assert.AnError)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: appointmentID, Notes: ptr.Ptr("x")})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "internal server error", domain.Message(err))
}
