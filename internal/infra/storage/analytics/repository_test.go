package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestRepository_DailyLoad(t *testing.T) {
	repo, mock := newMock(t)
	from := time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 11, 17, 0, 0, 0, 0, time.UTC)
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`COUNT\(\*\) FILTER \(WHERE status = 'completed'\).* WHERE appointment_date BETWEEN \$1 AND \$2 GROUP BY appointment_date ORDER BY appointment_date DESC`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_date", "total", "completed", "cancelled", "no_show"}).
			AddRow(day, 12, 7, 3, 2))

	loads, err := repo.DailyLoad(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, day, loads[0].Date)
	assert.Equal(t, 12, loads[0].Total)
	assert.Equal(t, 2, loads[0].NoShow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ProviderUtilization(t *testing.T) {
	repo, mock := newMock(t)
	since := time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)
	providerID := uuid.New()

	mock.ExpectQuery(`FROM providers pr LEFT JOIN appointments a ON a.provider_id = pr.provider_id AND a.appointment_date >= \$1 WHERE pr.is_active = \$2`).
		WithArgs(since, true).
		WillReturnRows(sqlmock.NewRows([]string{"provider_id", "name", "specialty", "total", "completed", "cancelled", "no_show"}).
			AddRow(providerID.String(), "Greg House", "Diagnostics", 3, 2, 0, 1))

	stats, err := repo.ProviderUtilization(context.Background(), since)

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, providerID, stats[0].ProviderID)
	assert.Equal(t, 66.67, stats[0].CompletionRate())
	assert.Equal(t, 33.33, stats[0].NoShowRate())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MonthlyNoShows(t *testing.T) {
	repo, mock := newMock(t)
	since := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	month := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`date_trunc\('month', appointment_date\)::date AS month.* GROUP BY month ORDER BY month DESC`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"month", "total", "no_show"}).AddRow(month, 40, 4))

	stats, err := repo.MonthlyNoShows(context.Background(), since)

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 10.0, stats[0].NoShowRate())
}

func TestRepository_DailyLoad_QueryError(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	_, err := repo.DailyLoad(context.Background(), time.Now(), time.Now())

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, assert.AnError)
}
