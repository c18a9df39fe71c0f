package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeIDExists = errors.New("employee id already exists")
	ErrEmailExists      = errors.New("email already in use")
)
