package api

import (
	"context"
	"strconv"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type EmployeeService struct {
	client *Client
}

func NewEmployeeService(client *Client) *EmployeeService {
	return &EmployeeService{client: client}
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.client.Get(ctx, "employees", nil, &employees); err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

func (s *EmployeeService) Create(ctx context.Context, employee dto.CreateEmployee) (int64, error) {
	var id int64
	if err := s.client.Post(ctx, "employees", employee, &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *EmployeeService) Update(ctx context.Context, employee models.Employee) (bool, error) {
	var ok bool
	if err := s.client.Put(ctx, "employees", employee, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := s.client.Delete(ctx, "employees/"+strconv.FormatInt(id, 10), &ok); err != nil {
		return false, err
	}
	return ok, nil
}
