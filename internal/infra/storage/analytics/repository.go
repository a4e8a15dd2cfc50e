package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/dbmetrics"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/psqlbuilder"
)

// Repository read-only агрегаты по приёмам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аналитики
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func countStatus(column string, status domain.AppointmentStatus) string {
	return fmt.Sprintf("COUNT(*) FILTER (WHERE %s = '%s')", column, status)
}

// DailyLoad считает приёмы по дням в диапазоне [from, to], сначала последние дни
func (r *Repository) DailyLoad(ctx context.Context, from, to time.Time) ([]domain.DailyLoad, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"appointment_date",
		"COUNT(*)",
		countStatus("status", domain.StatusCompleted),
		countStatus("status", domain.StatusCancelled),
		countStatus("status", domain.StatusNoShow),
	).
		From("appointments").
		Where(squirrel.Expr("appointment_date BETWEEN ? AND ?", from, to)).
		GroupBy("appointment_date").
		OrderBy("appointment_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DailyLoad - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DailyLoad - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.DailyLoad, 0)
	for rows.Next() {
		var d domain.DailyLoad
		if err := rows.Scan(&d.Date, &d.Total, &d.Completed, &d.Cancelled, &d.NoShow); err != nil {
			return nil, fmt.Errorf("%w: DailyLoad - scan row: %w", ErrScanRow, err)
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DailyLoad - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// ProviderUtilization считает приёмы каждого активного врача начиная с since.
// Врачи без приёмов попадают в результат с нулями (LEFT JOIN).
func (r *Repository) ProviderUtilization(ctx context.Context, since time.Time) ([]domain.ProviderUtilization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"pr.provider_id",
		"pr.first_name || ' ' || pr.last_name",
		"pr.specialty",
		"COUNT(a.appointment_id)",
		countStatus("a.status", domain.StatusCompleted),
		countStatus("a.status", domain.StatusCancelled),
		countStatus("a.status", domain.StatusNoShow),
	).
		From("providers pr").
		LeftJoin("appointments a ON a.provider_id = pr.provider_id AND a.appointment_date >= ?", since).
		Where(squirrel.Eq{"pr.is_active": true}).
		GroupBy("pr.provider_id", "pr.first_name", "pr.last_name", "pr.specialty").
		OrderBy("COUNT(a.appointment_id) DESC", "pr.last_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ProviderUtilization - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ProviderUtilization - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.ProviderUtilization, 0)
	for rows.Next() {
		var u domain.ProviderUtilization
		err := rows.Scan(&u.ProviderID, &u.ProviderName, &u.Specialty, &u.Total, &u.Completed, &u.Cancelled, &u.NoShow)
		if err != nil {
			return nil, fmt.Errorf("%w: ProviderUtilization - scan row: %w", ErrScanRow, err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ProviderUtilization - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// MonthlyNoShows считает неявки по месяцам начиная с since, сначала последние месяцы
func (r *Repository) MonthlyNoShows(ctx context.Context, since time.Time) ([]domain.MonthlyNoShows, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"date_trunc('month', appointment_date)::date AS month",
		"COUNT(*)",
		countStatus("status", domain.StatusNoShow),
	).
		From("appointments").
		Where(squirrel.GtOrEq{"appointment_date": since}).
		GroupBy("month").
		OrderBy("month DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MonthlyNoShows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MonthlyNoShows - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.MonthlyNoShows, 0)
	for rows.Next() {
		var m domain.MonthlyNoShows
		if err := rows.Scan(&m.Month, &m.Total, &m.NoShow); err != nil {
			return nil, fmt.Errorf("%w: MonthlyNoShows - scan row: %w", ErrScanRow, err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: MonthlyNoShows - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}
