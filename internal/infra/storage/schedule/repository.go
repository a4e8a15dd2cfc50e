package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/dbmetrics"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/pgerr"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/psqlbuilder"
)

const table = "provider_schedules"

var columns = []string{
	"schedule_id",
	"provider_id",
	"day_of_week",
	"start_time",
	"end_time",
	"effective_from",
	"effective_until",
	"created_at",
}

// Repository репозиторий для работы с недельным расписанием врачей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое правило расписания
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, s *domain.ProviderSchedule) (*domain.ProviderSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"schedule_id",
			"provider_id",
			"day_of_week",
			"start_time",
			"end_time",
			"effective_from",
			"effective_until",
		).
		Values(
			s.ID,
			s.ProviderID,
			s.DayOfWeek,
			s.StartTime,
			s.EndTime,
			s.EffectiveFrom,
			s.EffectiveUntil,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		switch {
		case pgerr.IsForeignKeyViolation(err):
			return nil, fmt.Errorf("%w: Create - provider %s", ErrProviderNotFound, s.ProviderID)
		case pgerr.IsCheckViolation(err):
			return nil, fmt.Errorf("%w: Create - constraint %s", ErrConstraintViolation, pgerr.Constraint(err))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time

	return s, nil
}

// ListApplicable получает правила врача для дня недели, действующие на дату.
// Правило действует, если effective_from <= date и (effective_until IS NULL или effective_until >= date).
func (r *Repository) ListApplicable(
	ctx context.Context,
	providerID uuid.UUID,
	dayOfWeek int,
	date time.Time,
) ([]*domain.ProviderSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		Where(squirrel.LtOrEq{"effective_from": date}).
		Where(squirrel.Or{
			squirrel.Eq{"effective_until": nil},
			squirrel.GtOrEq{"effective_until": date},
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListApplicable - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListApplicable", query, args)
}

// ListByProvider получает все правила врача, отсортированные по дню недели и времени начала
func (r *Repository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*domain.ProviderSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListByProvider", query, args)
}

// Delete удаляет правило расписания врача
func (r *Repository) Delete(ctx context.Context, providerID, scheduleID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.ProviderSchedule, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	schedules := make([]*domain.ProviderSchedule, 0)
	for rows.Next() {
		var s domain.ProviderSchedule
		var effectiveUntil, createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.ProviderID,
			&s.DayOfWeek,
			&s.StartTime,
			&s.EndTime,
			&s.EffectiveFrom,
			&effectiveUntil,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}

		if effectiveUntil.Valid {
			until := effectiveUntil.Time
			s.EffectiveUntil = &until
		}
		s.CreatedAt = createdAt.Time

		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return schedules, nil
}
