package handlers

import (
	"context"
	"time"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

// EventServiceInterface defines the methods used by handlers from EventService
type EventServiceInterface interface {
	List(ctx context.Context, start, end *time.Time) ([]models.Event, error)
	Create(ctx context.Context, req dto.CreateEvent) (int64, error)
	Update(ctx context.Context, req dto.UpdateEvent) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TeamServiceInterface defines the methods used by handlers from TeamService
type TeamServiceInterface interface {
	List(ctx context.Context) ([]models.Team, error)
	Create(ctx context.Context, req dto.CreateTeam) (int64, error)
	Update(ctx context.Context, team models.Team) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EmployeeServiceInterface defines the methods used by handlers from EmployeeService
type EmployeeServiceInterface interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, req dto.CreateEmployee) (int64, error)
	Update(ctx context.Context, employee models.Employee) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AuthServiceInterface defines the methods used by handlers from AuthService
type AuthServiceInterface interface {
	Login(ctx context.Context, req dto.Login) (string, bool, error)
	Validate(ctx context.Context, token string) bool
	Logout(ctx context.Context, token string)
	ChangePassword(ctx context.Context, req dto.ChangePassword) (bool, error)
	Expiry() time.Duration
}
