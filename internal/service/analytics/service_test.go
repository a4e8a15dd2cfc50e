package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics/models"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/ptr"
)

type mockAnalyticsRepo struct {
	mock.Mock
}

func (m *mockAnalyticsRepo) DailyLoad(ctx context.Context, from, to time.Time) ([]domain.DailyLoad, error) {
	args := m.Called(ctx, from, to)
	list, _ := args.Get(0).([]domain.DailyLoad)
	return list, args.Error(1)
}

func (m *mockAnalyticsRepo) ProviderUtilization(ctx context.Context, since time.Time) ([]domain.ProviderUtilization, error) {
	args := m.Called(ctx, since)
	list, _ := args.Get(0).([]domain.ProviderUtilization)
	return list, args.Error(1)
}

func (m *mockAnalyticsRepo) MonthlyNoShows(ctx context.Context, since time.Time) ([]domain.MonthlyNoShows, error) {
	args := m.Called(ctx, since)
	list, _ := args.Get(0).([]domain.MonthlyNoShows)
	return list, args.Error(1)
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

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService() (*Service, *mockAnalyticsRepo) {
	repo := &mockAnalyticsRepo{}
	s := NewService(repo, nopLogger{})
	s.timeProvider = fixedTime{now: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)}
	return s, repo
}

func TestDailyLoad_DefaultWindow(t *testing.T) {
	s, repo := newService()
	repo.On("DailyLoad", mock.Anything, day(2026, 9, 18), day(2026, 11, 17)).
		Return([]domain.DailyLoad{{Date: day(2026, 10, 19), Total: 12, Completed: 3, Cancelled: 1, NoShow: 2}}, nil)

	resp, err := s.DailyLoad(context.Background(), &models.DailyLoadRequest{})

	require.NoError(t, err)
	assert.Equal(t, "2026-09-18", resp.From)
	assert.Equal(t, "2026-11-17", resp.To)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, models.DailyLoadItem{Date: "2026-10-19", Total: 12, Completed: 3, Cancelled: 1, NoShow: 2}, resp.Days[0])
}

func TestDailyLoad_InvalidWindow(t *testing.T) {
	s, repo := newService()

	_, err := s.DailyLoad(context.Background(), &models.DailyLoadRequest{
		From: ptr.Ptr(day(2026, 10, 20)),
		To:   ptr.Ptr(day(2026, 10, 1)),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.DailyLoad(context.Background(), &models.DailyLoadRequest{
		From: ptr.Ptr(day(2025, 1, 1)),
		To:   ptr.Ptr(day(2026, 10, 1)),
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	repo.AssertNotCalled(t, "DailyLoad", mock.Anything, mock.Anything, mock.Anything)
}

func TestProviderUtilization(t *testing.T) {
	s, repo := newService()
	repo.On("ProviderUtilization", mock.Anything, day(2026, 10, 11)).Return([]domain.ProviderUtilization{{
		ProviderID:   uuid.New(),
		ProviderName: "Gregory House",
		Total:        8,
		Completed:    6,
		NoShow:       1,
	}}, nil)

	resp, err := s.ProviderUtilization(context.Background(), &models.ProviderUtilizationRequest{Days: 7})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.PeriodDays)
	require.Len(t, resp.Providers, 1)
	assert.Equal(t, 75.0, resp.Providers[0].CompletionRate)
	assert.Equal(t, 12.5, resp.Providers[0].NoShowRate)
}

func TestProviderUtilization_DefaultAndBounds(t *testing.T) {
	s, repo := newService()
	repo.On("ProviderUtilization", mock.Anything, day(2026, 9, 18)).Return(nil, nil)

	resp, err := s.ProviderUtilization(context.Background(), &models.ProviderUtilizationRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUtilizationPeriodDays, resp.PeriodDays)
	assert.NotNil(t, resp.Providers)

	for _, days := range []int{-1, 366} {
		_, err := s.ProviderUtilization(context.Background(), &models.ProviderUtilizationRequest{Days: days})
		assert.ErrorIs(t, err, domain.ErrValidation, "days %d", days)
	}
}

func TestNoShowTrend(t *testing.T) {
	s, repo := newService()
	repo.On("MonthlyNoShows", mock.Anything, day(2026, 8, 1)).Return([]domain.MonthlyNoShows{
		{Month: day(2026, 10, 1), Total: 40, NoShow: 3},
		{Month: day(2026, 9, 1), Total: 0, NoShow: 0},
	}, nil)

	resp, err := s.NoShowTrend(context.Background(), &models.NoShowTrendRequest{Months: 3})

	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", resp.Since)
	require.Len(t, resp.Months, 2)
	assert.Equal(t, "2026-10", resp.Months[0].Month)
	assert.Equal(t, 7.5, resp.Months[0].NoShowRate)
	assert.Equal(t, 0.0, resp.Months[1].NoShowRate)
}

func TestNoShowTrend_RepositoryError(t *testing.T) {
	s, repo := newService()
	repo.On("MonthlyNoShows", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := s.NoShowTrend(context.Background(), &models.NoShowTrendRequest{})

	assert.ErrorIs(t, err, ErrInternal)
}
