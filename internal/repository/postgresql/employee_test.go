package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/staffdir/staffdir-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCtx scopes repository calls to the mock pool the same way a
// transaction is scoped in production: through the context querier slot.
func mockCtx(mock pgxmock.PgxPoolIface) context.Context {
	return context.WithValue(context.Background(), "tx", mock)
}

func TestTranslateEmployeePgError(t *testing.T) {
	t.Parallel()

	pkErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: employeePKConstraint}
	assert.ErrorIs(t, translateEmployeePgError(pkErr), employee.ErrEmployeeIDExists)

	emailErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: employeeEmailConstr}
	assert.ErrorIs(t, translateEmployeePgError(emailErr), employee.ErrEmailExists)

	otherConstraint := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "something_else"}
	assert.Equal(t, error(otherConstraint), translateEmployeePgError(otherConstraint))

	plain := errors.New("boom")
	assert.Equal(t, plain, translateEmployeePgError(plain))
}

func TestEmployeeRepository_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `)).
		WithArgs("E404").
		WillReturnError(pgx.ErrNoRows)

	repo := NewEmployeeRepository(nil)
	_, err = repo.FindByID(mockCtx(mock), "E404")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ExistsByID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`)).
		WithArgs("E001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewEmployeeRepository(nil)
	exists, err := repo.ExistsByID(mockCtx(mock), "E001")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_CountActiveByPosition(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM employees WHERE position = $1 AND active = true`)).
		WithArgs("Cashier").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	repo := NewEmployeeRepository(nil)
	count, err := repo.CountActiveByPosition(mockCtx(mock), "Cashier")

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO employees`)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: employeeEmailConstr})

	repo := NewEmployeeRepository(nil)
	_, err = repo.Create(mockCtx(mock), employee.Employee{ID: "E001", Email: "dup@example.com"})

	assert.ErrorIs(t, err, employee.ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Deactivate_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE employees`)).
		WithArgs("E404").
		WillReturnError(pgx.ErrNoRows)

	repo := NewEmployeeRepository(nil)
	err = repo.Deactivate(mockCtx(mock), "E404")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_DeleteByID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM employees WHERE id = $1`)).
		WithArgs("E001").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewEmployeeRepository(nil)
	err = repo.DeleteByID(mockCtx(mock), "E001")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_DeleteByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM employees WHERE id = $1`)).
		WithArgs("E404").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewEmployeeRepository(nil)
	err = repo.DeleteByID(mockCtx(mock), "E404")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
