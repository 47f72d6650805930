package services

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type EmployeeService struct {
	mu        sync.RWMutex
	nextID    int64
	employees map[int64]models.Employee
}

func NewEmployeeService() *EmployeeService {
	return &EmployeeService{employees: make(map[int64]models.Employee)}
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employees := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		employees = append(employees, e)
	}
	slices.SortFunc(employees, func(a, b models.Employee) int { return cmp.Compare(a.ID, b.ID) })
	return employees, nil
}

func (s *EmployeeService) Create(ctx context.Context, req dto.CreateEmployee) (int64, error) {
	if err := models.ValidateCreateEmployee(req); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.employees[s.nextID] = models.Employee{ID: s.nextID, Name: req.Name, Color: req.Color}
	return s.nextID, nil
}

func (s *EmployeeService) Update(ctx context.Context, employee models.Employee) (bool, error) {
	if err := models.ValidateEmployee(employee); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[employee.ID]; !ok {
		return false, nil
	}
	s.employees[employee.ID] = employee
	return true, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return false, nil
	}
	delete(s.employees, id)
	return true, nil
}

// Resolve returns the known employees among ids, in order.
func (s *EmployeeService) Resolve(ids []int64) []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Employee, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.employees[id]; ok {
			out = append(out, e)
		}
	}
	return out
}
