package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/staffdir/staffdir-backend-go/internal/domain/employee"
	"github.com/staffdir/staffdir-backend-go/internal/pkg/database"
)

const employeeColumns = `id, name, position, email, phone, salary, hire_date, active, created_at, updated_at`

const (
	uniqueViolationCode  = "23505"
	employeePKConstraint = "employees_pkey"
	employeeEmailConstr  = "employees_email_key"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// translateEmployeePgError maps unique-constraint violations to the
// domain conflict errors; everything else passes through untouched.
func translateEmployeePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}
	switch pgErr.ConstraintName {
	case employeePKConstraint:
		return employee.ErrEmployeeIDExists
	case employeeEmailConstr:
		return employee.ErrEmailExists
	}
	return err
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Position, &emp.Email, &emp.Phone,
		&emp.Salary, &emp.HireDate, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// FindAll implements employee.Repository.
func (e *employeeRepositoryImpl) FindAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

// FindByID implements employee.Repository.
func (e *employeeRepositoryImpl) FindByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// ExistsByID implements employee.Repository.
func (e *employeeRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return exists, nil
}

// FindByEmail implements employee.Repository.
func (e *employeeRepositoryImpl) FindByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	return scanEmployee(q.QueryRow(ctx, query, email))
}

// FindByActiveTrue implements employee.Repository.
func (e *employeeRepositoryImpl) FindByActiveTrue(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE active = true ORDER BY id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

// FindByPosition implements employee.Repository.
func (e *employeeRepositoryImpl) FindByPosition(ctx context.Context, position string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE position = $1 ORDER BY id`

	rows, err := q.Query(ctx, query, position)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

// SearchByName implements employee.Repository. Empty names match all rows.
func (e *employeeRepositoryImpl) SearchByName(ctx context.Context, name string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE name ILIKE '%' || $1 || '%' ORDER BY id`

	rows, err := q.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

// FindHiredInYear implements employee.Repository.
func (e *employeeRepositoryImpl) FindHiredInYear(ctx context.Context, year int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE EXTRACT(YEAR FROM hire_date) = $1 ORDER BY id`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

// FindEarningAtLeast implements employee.Repository.
func (e *employeeRepositoryImpl) FindEarningAtLeast(ctx context.Context, amount decimal.Decimal) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE active = true AND salary IS NOT NULL AND salary >= $1 ORDER BY id`

	rows, err := q.Query(ctx, query, amount)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

// CountActiveByPosition implements employee.Repository.
func (e *employeeRepositoryImpl) CountActiveByPosition(ctx context.Context, position string) (int64, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT COUNT(*) FROM employees WHERE position = $1 AND active = true`

	var count int64
	if err := q.QueryRow(ctx, query, position).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Create implements employee.Repository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, name, position, email, phone, salary, hire_date, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.Position, emp.Email, emp.Phone, emp.Salary, emp.HireDate, emp.Active,
	))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return created, nil
}

// Update implements employee.Repository. It overwrites every column
// except the primary key.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, position = $2, email = $3, phone = $4, salary = $5, hire_date = $6, active = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.Name, emp.Position, emp.Email, emp.Phone, emp.Salary, emp.HireDate, emp.Active, emp.ID,
	))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return updated, nil
}

// Deactivate implements employee.Repository. Re-deactivating an
// already-inactive employee succeeds.
func (e *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET active = false, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to deactivate employee %s: %w", id, err)
	}
	return nil
}

// DeleteByID implements employee.Repository.
func (e *employeeRepositoryImpl) DeleteByID(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `DELETE FROM employees WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
