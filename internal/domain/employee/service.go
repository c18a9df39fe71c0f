package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service defines business logic for employee directory operations
type Service interface {
	// List returns every employee, active or not
	List(ctx context.Context) ([]EmployeeResponse, error)

	// ListActive returns only employees still marked active
	ListActive(ctx context.Context) ([]EmployeeResponse, error)

	// Get retrieves a single employee by ID
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// Create persists a new employee after checking id and email uniqueness
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Update overwrites every field except the ID (full replace, not a patch)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate flips active to false; idempotent on already-inactive records
	Deactivate(ctx context.Context, id string) error

	// Delete permanently removes the record
	Delete(ctx context.Context, id string) error

	// SearchByName matches name substrings case-insensitively
	SearchByName(ctx context.Context, name string) ([]EmployeeResponse, error)

	// ListByPosition matches the position label exactly
	ListByPosition(ctx context.Context, position string) ([]EmployeeResponse, error)

	// ListHiredInYear returns employees hired in the given calendar year
	ListHiredInYear(ctx context.Context, year int) ([]EmployeeResponse, error)

	// ListEarningAtLeast returns active employees with salary >= amount
	ListEarningAtLeast(ctx context.Context, amount decimal.Decimal) ([]EmployeeResponse, error)

	// CountActiveByPosition is best-effort: it degrades to zero on store failure
	CountActiveByPosition(ctx context.Context, position string) PositionCount

	// TotalPayroll is best-effort: it degrades to zero on store failure
	TotalPayroll(ctx context.Context) PayrollTotal

	// NextEmployeeID is best-effort and advisory: it degrades to E001 on failure
	NextEmployeeID(ctx context.Context) NextID
}
