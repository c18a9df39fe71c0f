package response

import (
	"errors"
	"net/http"

	"github.com/staffdir/staffdir-backend-go/internal/domain/employee"
	"github.com/staffdir/staffdir-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Employee domain errors
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee with this ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email is already in use")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
