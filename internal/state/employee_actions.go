package state

import (
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type EmployeeAction interface {
	Type() string
	employeeAction()
}

type (
	GetEmployees     struct{}
	GetEmployeesOk   struct{ Employees []models.Employee }
	CreateEmployee   struct{ Employee dto.CreateEmployee }
	CreateEmployeeOk struct{ Employee models.Employee }
	UpdateEmployee   struct{ Employee models.Employee }
	UpdateEmployeeOk struct{ Employee models.Employee }
	DeleteEmployee   struct{ ID int64 }
	DeleteEmployeeOk struct{ ID int64 }
)

func (GetEmployees) Type() string     { return "[Employee] Get employees" }
func (GetEmployeesOk) Type() string   { return "[Employee] Get employees Ok" }
func (CreateEmployee) Type() string   { return "[Employee] Create employee" }
func (CreateEmployeeOk) Type() string { return "[Employee] Create employee Ok" }
func (UpdateEmployee) Type() string   { return "[Employee] Update employee" }
func (UpdateEmployeeOk) Type() string { return "[Employee] Update employee Ok" }
func (DeleteEmployee) Type() string   { return "[Employee] Delete employee" }
func (DeleteEmployeeOk) Type() string { return "[Employee] Delete employee Ok" }

func (GetEmployees) employeeAction()     {}
func (GetEmployeesOk) employeeAction()   {}
func (CreateEmployee) employeeAction()   {}
func (CreateEmployeeOk) employeeAction() {}
func (UpdateEmployee) employeeAction()   {}
func (UpdateEmployeeOk) employeeAction() {}
func (DeleteEmployee) employeeAction()   {}
func (DeleteEmployeeOk) employeeAction() {}
