package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/dbmetrics"
)

type outcomeRecorder struct {
	outcomes []string
}

func (r *outcomeRecorder) IncTransaction(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock, *outcomeRecorder) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rec := &outcomeRecorder{}
	return NewTransactionManager(dbmetrics.Wrap(db, nil), rec), mock, rec
}

func TestDo_Commit(t *testing.T) {
	tm, mock, rec := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE appointments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		require.True(t, dbmetrics.IsInTransaction(ctx))
		_, err := dbmetrics.GetExecutor(ctx, nil).ExecContext(ctx, "UPDATE appointments SET status = 'confirmed'")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"commit"}, rec.outcomes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_RollbackOnError(t *testing.T) {
	tm, mock, rec := newManager(t)
	errBoom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{"rollback"}, rec.outcomes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_SerializationFailureOnCommit(t *testing.T) {
	tm, mock, rec := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrSerializationFailure)
	assert.Equal(t, []string{"serialization_failure"}, rec.outcomes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_SerializationFailureInsideFn(t *testing.T) {
	tm, mock, _ := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		return &pq.Error{Code: "40001"}
	})

	assert.ErrorIs(t, err, ErrSerializationFailure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_BeginFails(t *testing.T) {
	tm, mock, rec := newManager(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := tm.Do(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
	assert.False(t, called)
	assert.Empty(t, rec.outcomes)
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	tm, mock, rec := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return tm.DoSerializable(ctx, func(inner context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"commit"}, rec.outcomes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_PanicRollsBack(t *testing.T) {
	tm, mock, rec := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Do(context.Background(), func(ctx context.Context) error {
			panic("unexpected")
		})
	})
	assert.Equal(t, []string{"rollback"}, rec.outcomes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
