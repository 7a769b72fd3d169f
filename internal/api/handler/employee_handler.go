package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peoplekit/employee-system/internal/api/metrics"
	"github.com/peoplekit/employee-system/internal/api/middleware"
	"github.com/peoplekit/employee-system/internal/core/domain"
	"github.com/peoplekit/employee-system/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee CRUD.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// --- Request / Response types ---

type employeeRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Salary    float64 `json:"salary"`
}

type employeeResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Salary    float64 `json:"salary"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func toResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Salary:    e.Salary,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *EmployeeHandler) input(c echo.Context, req employeeRequest) ports.EmployeeInput {
	actor, _ := c.Get(middleware.CtxUsername).(string)
	return ports.EmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Salary:    req.Salary,
		Actor:     actor,
	}
}

// List handles GET /api/employees.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   employeeResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, toResponse(e))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(employee))
}

// Create handles POST /api/employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee fields"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), h.input(c, req))
	if err != nil {
		return err
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toResponse(created))
}

// Update handles PUT /api/employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee id"
// @Param        body  body      employeeRequest  true  "Employee fields"
// @Success      200   {object}  employeeResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), h.input(c, req))
	if err != nil {
		return err
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toResponse(updated))
}

// Delete handles DELETE /api/employees/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	actor, _ := c.Get(middleware.CtxUsername).(string)
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
