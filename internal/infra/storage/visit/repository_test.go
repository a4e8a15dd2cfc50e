package visit

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/pgerr"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/ptr"
)

var (
	visitID       = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	appointmentID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	patientID     = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	providerID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	visitDate     = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	stamp         = time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestRepository_ExistsForAppointment(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM visits WHERE appointment_id = \$1 \)`).
		WithArgs(appointmentID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ExistsForAppointment(context.Background(), appointmentID)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_Create_Stub(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO visits").
		WithArgs(sqlmock.AnyArg(), appointmentID, patientID, providerID, visitDate,
			nil, nil, nil, nil, nil, false, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(stamp, stamp))

	v, err := repo.Create(context.Background(), domain.NewVisitStub(&domain.Appointment{
		ID:              appointmentID,
		PatientID:       patientID,
		ProviderID:      providerID,
		AppointmentDate: visitDate,
	}))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("INSERT INTO visits").
		WillReturnError(&pq.Error{Code: pgerr.CodeUniqueViolation, Constraint: "visits_appointment_id_key"})

	_, err := repo.Create(context.Background(), &domain.Visit{AppointmentID: appointmentID})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRepository_CreateIfAbsent_Inserted(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO visits .* ON CONFLICT \(appointment_id\) DO NOTHING RETURNING created_at, updated_at`).
		WithArgs(sqlmock.AnyArg(), appointmentID, patientID, providerID, visitDate,
			nil, nil, nil, nil, nil, false, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(stamp, stamp))

	v := domain.NewVisitStub(&domain.Appointment{
		ID:              appointmentID,
		PatientID:       patientID,
		ProviderID:      providerID,
		AppointmentDate: visitDate,
	})
	created, err := repo.CreateIfAbsent(context.Background(), v)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, stamp, v.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateIfAbsent_ExistingVisit(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`ON CONFLICT \(appointment_id\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	created, err := repo.CreateIfAbsent(context.Background(), &domain.Visit{AppointmentID: appointmentID})

	require.NoError(t, err)
	assert.False(t, created)
}

func TestRepository_CreateIfAbsent_ForeignKey(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("INSERT INTO visits").
		WillReturnError(&pq.Error{Code: pgerr.CodeForeignKeyViolation})

	_, err := repo.CreateIfAbsent(context.Background(), &domain.Visit{AppointmentID: appointmentID})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	followUp := visitDate.AddDate(0, 0, 14)

	mock.ExpectQuery(`SELECT .* FROM visits WHERE visit_id = \$1`).
		WithArgs(visitID).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			visitID.String(), appointmentID.String(), patientID.String(), providerID.String(), visitDate,
			"cough", "bronchitis", nil,
			[]byte(`[{"medication":"amoxicillin","dosage":"500mg"}]`),
			nil, true, followUp, stamp, stamp,
		))

	v, err := repo.GetByID(context.Background(), visitID)

	require.NoError(t, err)
	require.Len(t, v.Prescriptions, 1)
	assert.Equal(t, "amoxicillin", v.Prescriptions[0].Medication)
	assert.True(t, v.FollowUpRequired)
	require.NotNil(t, v.FollowUpDate)
	assert.Equal(t, followUp, *v.FollowUpDate)
	assert.Nil(t, v.TreatmentPlan)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), visitID)
	assert.ErrorIs(t, err, ErrVisitNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`WHERE patient_id = \$1 ORDER BY visit_date DESC, created_at DESC LIMIT 20`).
		WithArgs(patientID).
		WillReturnRows(sqlmock.NewRows(columns))

	list, err := repo.List(context.Background(), domain.VisitFilter{PatientID: &patientID, Limit: 20})

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`UPDATE visits SET chief_complaint = \$1, diagnosis = \$2, .* WHERE visit_id = \$8 RETURNING updated_at`).
		WithArgs("headache", nil, nil, `[{"medication":"ibuprofen"}]`, nil, false, nil, visitID).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(stamp))

	v, err := repo.Update(context.Background(), &domain.Visit{
		ID:             visitID,
		ChiefComplaint: ptr.Ptr("headache"),
		Prescriptions:  domain.Prescriptions{{Medication: "ibuprofen"}},
	})

	require.NoError(t, err)
	assert.Equal(t, stamp, v.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_FollowUpConstraint(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("UPDATE visits").
		WillReturnError(&pq.Error{Code: pgerr.CodeCheckViolation, Constraint: "valid_follow_up"})

	_, err := repo.Update(context.Background(), &domain.Visit{ID: visitID, FollowUpRequired: true})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}
