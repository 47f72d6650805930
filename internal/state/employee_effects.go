package state

import (
	"context"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/store"
)

func employeeEffects(deps Deps) []*store.Effect {
	return []*store.Effect{
		store.On("get_employees", store.Latest, func(ctx context.Context, _ GetEmployees) store.Action {
			employees, err := deps.Employees.List(ctx)
			if err != nil {
				deps.failed(ctx, "get_employees", err)
				return nil
			}
			return GetEmployeesOk{Employees: employees}
		}),

		store.On("create_employee", store.Exhaust, func(ctx context.Context, a CreateEmployee) store.Action {
			id, err := deps.Employees.Create(ctx, a.Employee)
			if err != nil {
				deps.failed(ctx, "create_employee", err)
				return nil
			}
			return CreateEmployeeOk{Employee: models.Employee{
				ID:    id,
				Name:  a.Employee.Name,
				Color: a.Employee.Color,
			}}
		}),

		store.On("update_employee", store.Exhaust, func(ctx context.Context, a UpdateEmployee) store.Action {
			ok, err := deps.Employees.Update(ctx, a.Employee)
			if err != nil {
				deps.failed(ctx, "update_employee", err)
				return nil
			}
			if !ok {
				deps.rejected(ctx, "update_employee")
				return nil
			}
			return UpdateEmployeeOk{Employee: a.Employee}
		}),

		store.On("delete_employee", store.Exhaust, func(ctx context.Context, a DeleteEmployee) store.Action {
			ok, err := deps.Employees.Delete(ctx, a.ID)
			if err != nil {
				deps.failed(ctx, "delete_employee", err)
				return nil
			}
			if !ok {
				deps.rejected(ctx, "delete_employee")
				return nil
			}
			return DeleteEmployeeOk{ID: a.ID}
		}),
	}
}
