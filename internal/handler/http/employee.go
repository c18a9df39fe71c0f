package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/staffdir/staffdir-backend-go/internal/domain/employee"
	"github.com/staffdir/staffdir-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListActiveEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeactivateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	SearchEmployees(w http.ResponseWriter, r *http.Request)
	ListEmployeesByPosition(w http.ResponseWriter, r *http.Request)
	ListEmployeesHiredInYear(w http.ResponseWriter, r *http.Request)
	ListEmployeesEarningAtLeast(w http.ResponseWriter, r *http.Request)
	CountActiveByPosition(w http.ResponseWriter, r *http.Request)
	GetTotalPayroll(w http.ResponseWriter, r *http.Request)
	GetNextEmployeeID(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// ListActiveEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListActiveEmployees(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// DeactivateEmployee implements EmployeeHandler - soft delete
func (h *employeeHandlerImpl) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deactivated successfully", nil)
}

// DeleteEmployee implements EmployeeHandler - hard delete
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// SearchEmployees implements EmployeeHandler - case-insensitive name search
func (h *employeeHandlerImpl) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	results, err := h.employeeService.SearchByName(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// ListEmployeesByPosition implements EmployeeHandler - exact position match
func (h *employeeHandlerImpl) ListEmployeesByPosition(w http.ResponseWriter, r *http.Request) {
	position := chi.URLParam(r, "position")
	if position == "" {
		response.BadRequest(w, "Position is required", nil)
		return
	}

	results, err := h.employeeService.ListByPosition(r.Context(), position)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// ListEmployeesHiredInYear implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployeesHiredInYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' must be a number", nil)
		return
	}

	results, err := h.employeeService.ListHiredInYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// ListEmployeesEarningAtLeast implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployeesEarningAtLeast(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("min"))
	if err != nil || amount.IsNegative() {
		response.BadRequest(w, "Query parameter 'min' must be a non-negative amount", nil)
		return
	}

	results, err := h.employeeService.ListEarningAtLeast(r.Context(), amount)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// CountActiveByPosition implements EmployeeHandler - best effort, never errors
func (h *employeeHandlerImpl) CountActiveByPosition(w http.ResponseWriter, r *http.Request) {
	position := r.URL.Query().Get("position")
	if position == "" {
		response.BadRequest(w, "Query parameter 'position' is required", nil)
		return
	}

	result := h.employeeService.CountActiveByPosition(r.Context(), position)
	response.Success(w, result)
}

// GetTotalPayroll implements EmployeeHandler - best effort, never errors
func (h *employeeHandlerImpl) GetTotalPayroll(w http.ResponseWriter, r *http.Request) {
	result := h.employeeService.TotalPayroll(r.Context())
	response.Success(w, result)
}

// GetNextEmployeeID implements EmployeeHandler - advisory suggestion only
func (h *employeeHandlerImpl) GetNextEmployeeID(w http.ResponseWriter, r *http.Request) {
	result := h.employeeService.NextEmployeeID(r.Context())
	response.Success(w, result)
}
