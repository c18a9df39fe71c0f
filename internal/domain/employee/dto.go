package employee

import (
	"github.com/shopspring/decimal"
	"github.com/staffdir/staffdir-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Position string           `json:"position"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
	HireDate string           `json:"hire_date"`
	Active   *bool            `json:"active,omitempty"`
}

// UpdateEmployeeRequest replaces every field of the record except the
// ID. Omitted optional fields overwrite the stored values.
type UpdateEmployeeRequest struct {
	Name     string           `json:"name"`
	Position string           `json:"position"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
	HireDate string           `json:"hire_date"`
	Active   *bool            `json:"active"`
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Salary    *string `json:"salary"`
	HireDate  string  `json:"hire_date"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// PayrollTotal carries the sum of active salaries. Degraded is set when
// the store failed and the total fell back to zero instead of an error.
type PayrollTotal struct {
	Total    decimal.Decimal `json:"total"`
	Degraded bool            `json:"-"`
}

// PositionCount carries the active head count for one position.
type PositionCount struct {
	Position string `json:"position"`
	Count    int64  `json:"count"`
	Degraded bool   `json:"-"`
}

// NextID is an advisory id suggestion. Nothing reserves it; two
// concurrent callers can receive the same value and race at create.
type NextID struct {
	ID       string `json:"next_id"`
	Degraded bool   `json:"-"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must match E followed by at least three digits, e.g. E001"})
	}
	errs = append(errs, validateCommonFields(r.Name, r.Position, r.Email, r.HireDate, r.Salary)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r UpdateEmployeeRequest) Validate() error {
	errs := validateCommonFields(r.Name, r.Position, r.Email, r.HireDate, r.Salary)

	if r.Active == nil {
		errs = append(errs, validator.ValidationError{Field: "active", Message: "active is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCommonFields(name, position, email, hireDate string, salary *decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if validator.IsEmpty(hireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date is required"})
	} else if _, ok := validator.IsValidDate(hireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"})
	}
	if salary != nil && salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	return errs
}
