package handlers

import (
	"net/http"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type EmployeeHandler struct {
	employeeService EmployeeServiceInterface
}

func NewEmployeeHandler(employeeService EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) List(c *drift.Context) {
	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		serviceError(c, "list_employees", err)
		return
	}
	ok(c, employees)
}

func (h *EmployeeHandler) Create(c *drift.Context) {
	var req dto.CreateEmployee
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Color == "" {
		req.Color = models.DefaultEmployeeColor
	}

	id, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		serviceError(c, "create_employee", err)
		return
	}
	ok(c, id)
}

func (h *EmployeeHandler) Update(c *drift.Context) {
	var employee models.Employee
	if err := c.BindJSON(&employee); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.employeeService.Update(c.Request.Context(), employee)
	if err != nil {
		serviceError(c, "update_employee", err)
		return
	}
	ok(c, updated)
}

func (h *EmployeeHandler) Delete(c *drift.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}

	deleted, err := h.employeeService.Delete(c.Request.Context(), id)
	if err != nil {
		serviceError(c, "delete_employee", err)
		return
	}
	ok(c, deleted)
}
