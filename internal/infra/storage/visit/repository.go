package visit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/dbmetrics"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/pgerr"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/psqlbuilder"
)

const table = "visits"

var columns = []string{
	"visit_id",
	"appointment_id",
	"patient_id",
	"provider_id",
	"visit_date",
	"chief_complaint",
	"diagnosis",
	"treatment_plan",
	"prescriptions",
	"notes",
	"follow_up_required",
	"follow_up_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с визитами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория визитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ExistsForAppointment проверяет, создан ли уже визит для приёма
func (r *Repository) ExistsForAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsForAppointment - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsForAppointment - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// Create создает визит
// Если в контексте передана активная транзакция, использует её.
// Второй визит для того же приёма отклоняется ограничением UNIQUE (ErrAlreadyExists).
func (r *Repository) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertQuery(v).
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

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// CreateIfAbsent вставляет визит, только если для приёма его ещё нет.
// Конфликт по appointment_id не считается ошибкой и не прерывает транзакцию: возвращается false.
func (r *Repository) CreateIfAbsent(ctx context.Context, v *domain.Visit) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertQuery(v).
		Suffix("ON CONFLICT (appointment_id) DO NOTHING RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, classify("CreateIfAbsent - execute insert", err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return true, nil
}

func insertQuery(v *domain.Visit) squirrel.InsertBuilder {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	return psqlbuilder.Insert(table).
		Columns(columns[:12]...).
		Values(
			v.ID,
			v.AppointmentID,
			v.PatientID,
			v.ProviderID,
			v.VisitDate,
			v.ChiefComplaint,
			v.Diagnosis,
			v.TreatmentPlan,
			v.Prescriptions,
			v.Notes,
			v.FollowUpRequired,
			v.FollowUpDate,
		)
}

// GetByID получает визит по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"visit_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	v, err := scanVisit(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan visit: %w", ErrScanRow, err)
	}

	return v, nil
}

// List получает визиты пациента или врача, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("visit_date DESC", "created_at DESC")

	if filter.PatientID != nil {
		builder = builder.Where(squirrel.Eq{"patient_id": *filter.PatientID})
	}
	if filter.ProviderID != nil {
		builder = builder.Where(squirrel.Eq{"provider_id": *filter.ProviderID})
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

	visits := make([]*domain.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return visits, nil
}

// Update сохраняет клинические поля визита
func (r *Repository) Update(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("chief_complaint", v.ChiefComplaint).
		Set("diagnosis", v.Diagnosis).
		Set("treatment_plan", v.TreatmentPlan).
		Set("prescriptions", v.Prescriptions).
		Set("notes", v.Notes).
		Set("follow_up_required", v.FollowUpRequired).
		Set("follow_up_date", v.FollowUpDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"visit_id": v.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, classify("Update - execute update", err)
	}

	v.UpdatedAt = updatedAt.Time

	return v, nil
}

func classify(op string, err error) error {
	switch {
	case pgerr.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrAlreadyExists, op, err)
	case pgerr.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrReferenceNotFound, op, err)
	case pgerr.IsCheckViolation(err):
		return fmt.Errorf("%w: %s: constraint %s", ErrConstraintViolation, op, pgerr.Constraint(err))
	default:
		return fmt.Errorf("%w: %s: %w", ErrExecQuery, op, err)
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanVisit(row scanner) (*domain.Visit, error) {
	var v domain.Visit
	var followUpDate, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.AppointmentID,
		&v.PatientID,
		&v.ProviderID,
		&v.VisitDate,
		&v.ChiefComplaint,
		&v.Diagnosis,
		&v.TreatmentPlan,
		&v.Prescriptions,
		&v.Notes,
		&v.FollowUpRequired,
		&followUpDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if followUpDate.Valid {
		d := followUpDate.Time
		v.FollowUpDate = &d
	}
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time
	return &v, nil
}
