package commands

import (
	"fmt"
	"slices"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/state"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/spf13/cobra"
)

func addEmployees(topLevel *cobra.Command, o *GlobalOptions) {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee"},
		Short:   "List employees.",
		Args:    cobra.NoArgs,
		RunE: withApp(o, func(cmd *cobra.Command, a *app, _ []string) error {
			s := a.do(state.GetEmployees{})
			printEmployees(a.out, state.SelectEmployees(s))
			return nil
		}),
	}

	addEmployeeCreate(cmd, o)
	addEmployeeUpdate(cmd, o)
	addEmployeeDelete(cmd, o)

	topLevel.AddCommand(cmd)
}

func addEmployeeCreate(parent *cobra.Command, o *GlobalOptions) {
	req := dto.CreateEmployee{}

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an employee.",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(o, func(cmd *cobra.Command, a *app, args []string) error {
			req.Name = args[0]
			if req.Color == "" {
				req.Color = models.DefaultEmployeeColor
			}
			if err := models.ValidateCreateEmployee(req); err != nil {
				return err
			}
			if err := a.requireLogin(); err != nil {
				return err
			}

			before := employeeIDs(a.do(state.GetEmployees{}))
			s := a.do(state.CreateEmployee{Employee: req})
			for _, id := range employeeIDs(s) {
				if !slices.Contains(before, id) {
					_, _ = success.Fprintf(a.out, "created employee %d\n", id)
					return nil
				}
			}
			return fmt.Errorf("employee was not created")
		}),
	}
	cmd.Flags().StringVar(&req.Color, "color", "", "color, #rrggbb")

	parent.AddCommand(cmd)
}

func addEmployeeUpdate(parent *cobra.Command, o *GlobalOptions) {
	var (
		name, hex string
		disabled  bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename, recolor or disable an employee.",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(o, func(cmd *cobra.Command, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.requireLogin(); err != nil {
				return err
			}

			employee, ok := state.SelectEmployeesMap(a.do(state.GetEmployees{}))[id]
			if !ok {
				return fmt.Errorf("employee %d not found", id)
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				employee.Name = name
			}
			if flags.Changed("color") {
				employee.Color = hex
			}
			if flags.Changed("disabled") {
				employee.Disabled = disabled
			}
			if err := models.ValidateEmployee(employee); err != nil {
				return err
			}

			updated := state.SelectEmployeesMap(a.do(state.UpdateEmployee{Employee: employee}))[id]
			if updated != employee {
				return fmt.Errorf("employee %d was not updated", id)
			}
			_, _ = success.Fprintf(a.out, "updated employee %d\n", id)
			return nil
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&hex, "color", "", "color, #rrggbb")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "hide the employee from new events")

	parent.AddCommand(cmd)
}

func addEmployeeDelete(parent *cobra.Command, o *GlobalOptions) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an employee.",
		Args:    cobra.ExactArgs(1),
		RunE: withApp(o, func(cmd *cobra.Command, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.requireLogin(); err != nil {
				return err
			}

			if !slices.Contains(employeeIDs(a.do(state.GetEmployees{})), id) {
				return fmt.Errorf("employee %d not found", id)
			}
			if slices.Contains(employeeIDs(a.do(state.DeleteEmployee{ID: id})), id) {
				return fmt.Errorf("employee %d was not deleted", id)
			}
			_, _ = success.Fprintf(a.out, "deleted employee %d\n", id)
			return nil
		}),
	}

	parent.AddCommand(cmd)
}

func employeeIDs(s state.AppState) []int64 {
	ids := make([]int64, 0, len(s.Employees.Employees))
	for _, e := range s.Employees.Employees {
		ids = append(ids, e.ID)
	}
	return ids
}
