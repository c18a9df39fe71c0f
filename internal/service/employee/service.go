// Package employee implements the directory's business rules: the
// uniqueness checks around create, full-replace update, soft versus
// hard delete, and the derived aggregate queries.
package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdir/staffdir-backend-go/internal/domain/employee"
)

// fallbackID is returned by NextEmployeeID when the store cannot be
// scanned. Best-effort operations degrade to a safe default instead of
// failing, so callers cannot tell a fresh store from a degraded answer.
const fallbackID = "E001"

var employeeIDPattern = regexp.MustCompile(`^E([0-9]+)$`)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
	tx           employee.TxManager
}

func NewEmployeeService(employeeRepo employee.Repository, tx employee.TxManager) employee.Service {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		tx:           tx,
	}
}

// Helper function to map an Employee to the response shape
func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var salaryStr *string
	if emp.Salary != nil {
		s := emp.Salary.StringFixed(2)
		salaryStr = &s
	}

	return employee.EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Position:  emp.Position,
		Email:     emp.Email,
		Phone:     emp.Phone,
		Salary:    salaryStr,
		HireDate:  emp.HireDate.Format("2006-01-02"),
		Active:    emp.Active,
		CreatedAt: emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapEmployeesToResponses(emps []employee.Employee) []employee.EmployeeResponse {
	results := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		results = append(results, mapEmployeeToResponse(emp))
	}
	return results
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return mapEmployeesToResponses(emps), nil
}

// ListActive implements employee.Service.
func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.FindByActiveTrue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	return mapEmployeesToResponses(emps), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// Create implements employee.Service. Both uniqueness checks and the
// insert run inside one transaction, so a conflict never leaves a
// partial write behind. The id check runs first so its conflict is the
// one surfaced when both would fire.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	newEmployee := employee.Employee{
		ID:       req.ID,
		Name:     req.Name,
		Position: req.Position,
		Email:    req.Email,
		Phone:    req.Phone,
		Salary:   req.Salary,
		HireDate: hireDate,
		Active:   active,
	}

	var created employee.Employee
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.employeeRepo.ExistsByID(txCtx, newEmployee.ID)
		if err != nil {
			return fmt.Errorf("failed to check employee id: %w", err)
		}
		if exists {
			return employee.ErrEmployeeIDExists
		}

		_, err = s.employeeRepo.FindByEmail(txCtx, newEmployee.Email)
		if err == nil {
			return employee.ErrEmailExists
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		created, err = s.employeeRepo.Create(txCtx, newEmployee)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// Update implements employee.Service. Every field except the ID is
// overwritten with the request values. Email uniqueness is not
// re-checked here, matching the create-time-only invariant; the store's
// unique index still rejects a collision.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee for update: %w", err)
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	existing.Name = req.Name
	existing.Position = req.Position
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Salary = req.Salary
	existing.HireDate = hireDate
	existing.Active = *req.Active

	updated, err := s.employeeRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(updated), nil
}

// Deactivate implements employee.Service. Deactivating an employee who
// is already inactive succeeds silently.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

// Delete implements employee.Service. This is the permanent removal;
// Deactivate is the soft one.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// SearchByName implements employee.Service.
func (s *EmployeeServiceImpl) SearchByName(ctx context.Context, name string) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	return mapEmployeesToResponses(emps), nil
}

// ListByPosition implements employee.Service.
func (s *EmployeeServiceImpl) ListByPosition(ctx context.Context, position string) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.FindByPosition(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by position: %w", err)
	}
	return mapEmployeesToResponses(emps), nil
}

// ListHiredInYear implements employee.Service.
func (s *EmployeeServiceImpl) ListHiredInYear(ctx context.Context, year int) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.FindHiredInYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees hired in %d: %w", year, err)
	}
	return mapEmployeesToResponses(emps), nil
}

// ListEarningAtLeast implements employee.Service.
func (s *EmployeeServiceImpl) ListEarningAtLeast(ctx context.Context, amount decimal.Decimal) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.FindEarningAtLeast(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by salary: %w", err)
	}
	return mapEmployeesToResponses(emps), nil
}

// CountActiveByPosition implements employee.Service. On store failure
// the count degrades to zero with Degraded set instead of erroring.
func (s *EmployeeServiceImpl) CountActiveByPosition(ctx context.Context, position string) employee.PositionCount {
	count, err := s.employeeRepo.CountActiveByPosition(ctx, position)
	if err != nil {
		slog.Error("Failed to count employees by position, degrading to zero", "position", position, "error", err)
		return employee.PositionCount{Position: position, Count: 0, Degraded: true}
	}
	return employee.PositionCount{Position: position, Count: count}
}

// TotalPayroll implements employee.Service. It sums the salaries of
// active employees, skipping records with no salary. On store failure
// the total degrades to zero with Degraded set.
func (s *EmployeeServiceImpl) TotalPayroll(ctx context.Context) employee.PayrollTotal {
	emps, err := s.employeeRepo.FindByActiveTrue(ctx)
	if err != nil {
		slog.Error("Failed to load active employees for payroll, degrading to zero", "error", err)
		return employee.PayrollTotal{Total: decimal.Zero, Degraded: true}
	}

	total := decimal.Zero
	for _, emp := range emps {
		if emp.Salary == nil {
			continue
		}
		total = total.Add(*emp.Salary)
	}
	return employee.PayrollTotal{Total: total}
}

// NextEmployeeID implements employee.Service. It scans all ids matching
// the E-prefix pattern, takes the highest numeric suffix and suggests
// the next one, zero-padded to at least three digits. Ids in any other
// format are skipped. On store failure the suggestion degrades to E001.
func (s *EmployeeServiceImpl) NextEmployeeID(ctx context.Context) employee.NextID {
	emps, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to scan employees for next id, degrading to fallback", "error", err)
		return employee.NextID{ID: fallbackID, Degraded: true}
	}

	maxID := 0
	for _, emp := range emps {
		match := employeeIDPattern.FindStringSubmatch(emp.ID)
		if match == nil {
			slog.Warn("Skipping employee id with unexpected format", "id", emp.ID)
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			slog.Warn("Skipping employee id with unparseable number", "id", emp.ID, "error", err)
			continue
		}
		if n > maxID {
			maxID = n
		}
	}

	return employee.NextID{ID: fmt.Sprintf("E%03d", maxID+1)}
}
