package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/dbmetrics"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/pgerr"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/psqlbuilder"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

const table = "appointments"

var columns = []string{
	"appointment_id",
	"patient_id",
	"provider_id",
	"appointment_date",
	"start_time",
	"end_time",
	"status",
	"appointment_type",
	"notes",
	"cancellation_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с приёмами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория приёмов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый приём
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Ограничение appointments_no_overlap является окончательной защитой от двойной записи:
// если параллельная транзакция успела записать пересекающийся приём, возвращается ErrOverlap.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"appointment_id",
			"patient_id",
			"provider_id",
			"appointment_date",
			"start_time",
			"end_time",
			"status",
			"appointment_type",
			"notes",
		).
		Values(
			a.ID,
			a.PatientID,
			a.ProviderID,
			a.AppointmentDate,
			a.StartTime,
			a.EndTime,
			a.Status,
			a.Type,
			a.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, classify("Create - execute insert", err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает приём по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает приём по ID и блокирует строку до конца транзакции (SELECT ... FOR UPDATE).
// Вне транзакции ведёт себя как GetByID.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id uuid.UUID, lock bool) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"appointment_id": id})

	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return a, nil
}

// FindOverlapping возвращает первый активный приём врача на дату, пересекающийся с [start, end).
// Пересечение полуоткрытое: start_time < end AND end_time > start.
// excludeID исключает сам приём при переносе. Если пересечений нет, возвращает nil, nil.
//
// Внутри транзакции найденная строка блокируется (FOR UPDATE).
func (r *Repository) FindOverlapping(
	ctx context.Context,
	providerID uuid.UUID,
	date time.Time,
	start, end types.TimeString,
	excludeID *uuid.UUID,
) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusStrings(domain.InactiveStatuses)}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC").
		Limit(1)

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"appointment_id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - scan appointment: %w", ErrScanRow, err)
	}

	return a, nil
}

// ListActiveByProviderDate получает активные приёмы врача на дату, отсортированные по времени начала
func (r *Repository) ListActiveByProviderDate(ctx context.Context, providerID uuid.UUID, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusStrings(domain.InactiveStatuses)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByProviderDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByProviderDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByProviderDate - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByProviderDate - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

// GetDetails получает приём вместе с именами пациента и врача
func (r *Repository) GetDetails(ctx context.Context, id uuid.UUID) (*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect().
		Where(squirrel.Eq{"a.appointment_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - build select query: %v", ErrBuildQuery, err)
	}

	d, err := scanDetails(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - scan appointment: %w", ErrScanRow, err)
	}

	return d, nil
}

// List получает приёмы с фильтрацией по пациенту, врачу, дате и статусу.
// Сортировка: сначала новые (appointment_date DESC, start_time DESC).
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := detailsSelect().
		OrderBy("a.appointment_date DESC", "a.start_time DESC")

	if filter.PatientID != nil {
		builder = builder.Where(squirrel.Eq{"a.patient_id": *filter.PatientID})
	}
	if filter.ProviderID != nil {
		builder = builder.Where(squirrel.Eq{"a.provider_id": *filter.ProviderID})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"a.appointment_date": *filter.Date})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"a.status": *filter.Status})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AppointmentDetails, 0)
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus меняет статус приёма и, если передана, причину отмены.
// Проверка допустимости перехода выполняется в usecase под блокировкой строки.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.AppointmentStatus,
	cancellationReason *string,
) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"appointment_id": id}).
		Suffix("RETURNING " + joinColumns())

	if cancellationReason != nil {
		builder = builder.Set("cancellation_reason", *cancellationReason)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, classify("UpdateStatus - execute update", err)
	}

	return a, nil
}

// Reschedule переносит приём на новые дату и время, опционально обновляя заметки.
// Пересечение с другим активным приёмом отклоняется ограничением appointments_no_overlap (ErrOverlap).
func (r *Repository) Reschedule(
	ctx context.Context,
	id uuid.UUID,
	date time.Time,
	start, end types.TimeString,
	notes *string,
) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(table).
		Set("appointment_date", date).
		Set("start_time", start).
		Set("end_time", end).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"appointment_id": id}).
		Suffix("RETURNING " + joinColumns())

	if notes != nil {
		builder = builder.Set("notes", *notes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, classify("Reschedule - execute update", err)
	}

	return a, nil
}

// classify переводит ошибки PostgreSQL в ошибки репозитория.
// Исходная ошибка остаётся в цепочке, чтобы менеджер транзакций распознал сбой сериализации.
func classify(op string, err error) error {
	switch {
	case pgerr.IsExclusionViolation(err), pgerr.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrOverlap, op, err)
	case pgerr.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrReferenceNotFound, op, err)
	case pgerr.IsCheckViolation(err):
		return fmt.Errorf("%w: %s: constraint %s: %v", ErrConstraintViolation, op, pgerr.Constraint(err), err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrExecQuery, op, err)
	}
}

func detailsSelect() squirrel.SelectBuilder {
	cols := make([]string, 0, len(columns)+3)
	for _, c := range columns {
		cols = append(cols, "a."+c)
	}
	cols = append(cols,
		"p.first_name || ' ' || p.last_name AS patient_name",
		"pr.first_name || ' ' || pr.last_name AS provider_name",
		"pr.specialty AS provider_specialty",
	)

	return psqlbuilder.Select(cols...).
		From(table + " a").
		Join("patients p ON a.patient_id = p.patient_id").
		Join("providers pr ON a.provider_id = pr.provider_id")
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func appointmentDest(a *domain.Appointment, createdAt, updatedAt *sql.NullTime) []interface{} {
	return []interface{}{
		&a.ID,
		&a.PatientID,
		&a.ProviderID,
		&a.AppointmentDate,
		&a.StartTime,
		&a.EndTime,
		&a.Status,
		&a.Type,
		&a.Notes,
		&a.CancellationReason,
		createdAt,
		updatedAt,
	}
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(appointmentDest(&a, &createdAt, &updatedAt)...); err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time
	return &a, nil
}

func scanDetails(row scanner) (*domain.AppointmentDetails, error) {
	var d domain.AppointmentDetails
	var createdAt, updatedAt sql.NullTime

	dest := appointmentDest(&d.Appointment, &createdAt, &updatedAt)
	dest = append(dest, &d.PatientName, &d.ProviderName, &d.ProviderSpecialty)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time
	return &d, nil
}
