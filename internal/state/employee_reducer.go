package state

import (
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/store"
)

type EmployeeState struct {
	Employees []models.Employee
}

func employeeID(e models.Employee) int64 { return e.ID }

func ReduceEmployees(s EmployeeState, action store.Action) EmployeeState {
	a, ok := action.(EmployeeAction)
	if !ok {
		return s
	}

	switch a := a.(type) {
	case GetEmployeesOk:
		s.Employees = a.Employees
	case CreateEmployeeOk:
		s.Employees = appendItem(s.Employees, a.Employee)
	case UpdateEmployeeOk:
		s.Employees = replaceByID(s.Employees, a.Employee, employeeID)
	case DeleteEmployeeOk:
		s.Employees = removeByID(s.Employees, a.ID, employeeID)
	}
	return s
}
