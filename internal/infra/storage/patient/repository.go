package patient

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

const table = "patients"

var columns = []string{
	"patient_id",
	"first_name",
	"last_name",
	"date_of_birth",
	"email",
	"phone",
	"address",
	"insurance_id",
	"emergency_contact_name",
	"emergency_contact_phone",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пациентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пациентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пациента
func (r *Repository) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns[:10]...).
		Values(
			p.ID,
			p.FirstName,
			p.LastName,
			p.DateOfBirth,
			p.Email,
			p.Phone,
			p.Address,
			p.InsuranceID,
			p.EmergencyContactName,
			p.EmergencyContactPhone,
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

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает пациента по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"patient_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPatient(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan patient: %w", ErrScanRow, err)
	}

	return p, nil
}

// Exists проверяет существование пациента
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(squirrel.Eq{"patient_id": id}).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// List получает пациентов, упорядоченных по фамилии и имени.
// Search ищет подстроку (ILIKE) в имени, фамилии, email и телефоне.
func (r *Repository) List(ctx context.Context, filter domain.PatientFilter) ([]*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("last_name ASC", "first_name ASC")

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"phone": pattern},
		})
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

	patients := make([]*domain.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		patients = append(patients, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return patients, nil
}

// Update сохраняет изменённые поля пациента
func (r *Repository) Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("first_name", p.FirstName).
		Set("last_name", p.LastName).
		Set("date_of_birth", p.DateOfBirth).
		Set("email", p.Email).
		Set("phone", p.Phone).
		Set("address", p.Address).
		Set("insurance_id", p.InsuranceID).
		Set("emergency_contact_name", p.EmergencyContactName).
		Set("emergency_contact_phone", p.EmergencyContactPhone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"patient_id": p.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, classify("Update - execute update", err)
	}

	p.UpdatedAt = updatedAt.Time

	return p, nil
}

func classify(op string, err error) error {
	switch {
	case pgerr.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrDuplicateEmail, op, err)
	case pgerr.IsCheckViolation(err):
		return fmt.Errorf("%w: %s: constraint %s", ErrConstraintViolation, op, pgerr.Constraint(err))
	default:
		return fmt.Errorf("%w: %s: %w", ErrExecQuery, op, err)
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row scanner) (*domain.Patient, error) {
	var p domain.Patient
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.DateOfBirth,
		&p.Email,
		&p.Phone,
		&p.Address,
		&p.InsuranceID,
		&p.EmergencyContactName,
		&p.EmergencyContactPhone,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}
