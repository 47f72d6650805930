package state

import (
	"context"
	"log/slog"
	"time"

	"github.com/hilbertsen/teamcal/internal/api"
	"github.com/hilbertsen/teamcal/internal/logging"
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/store"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type AppState struct {
	Events    EventState
	Teams     TeamState
	Employees EmployeeState
	Auth      AuthState
}

type Store = store.Store[AppState]

func Initial() AppState {
	return AppState{
		Events:    EventState{Events: []models.Event{}},
		Teams:     TeamState{Teams: []models.Team{}},
		Employees: EmployeeState{Employees: []models.Employee{}},
		Auth:      AuthState{LoggedIn: models.AuthUnknown},
	}
}

// Reduce composes the slice reducers. Each slice only ever changes in its own reducer.
func Reduce(s AppState, action store.Action) AppState {
	s.Events = ReduceEvents(s.Events, action)
	s.Teams = ReduceTeams(s.Teams, action)
	s.Employees = ReduceEmployees(s.Employees, action)
	s.Auth = ReduceAuth(s.Auth, action)
	return s
}

type EventAPI interface {
	List(ctx context.Context, start, end *time.Time) ([]models.Event, error)
	Create(ctx context.Context, event dto.CreateEvent) (int64, error)
	Update(ctx context.Context, event dto.UpdateEvent) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type TeamAPI interface {
	List(ctx context.Context) ([]models.Team, error)
	Create(ctx context.Context, team dto.CreateTeam) (int64, error)
	Update(ctx context.Context, team models.Team) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type EmployeeAPI interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, employee dto.CreateEmployee) (int64, error)
	Update(ctx context.Context, employee models.Employee) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type AuthAPI interface {
	Login(ctx context.Context, login dto.Login) (bool, error)
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) (bool, error)
	ChangePassword(ctx context.Context, req dto.ChangePassword) (bool, error)
}

// Notifier shows a message to the user.
type Notifier interface {
	Success(message string)
}

type Deps struct {
	Events    EventAPI
	Teams     TeamAPI
	Employees EmployeeAPI
	Auth      AuthAPI
	Navigator Navigator
	Notifier  Notifier
	Logger    *slog.Logger
}

// NewStore creates the root store with every effect registered.
func NewStore(deps Deps, opts ...store.Option) *Store {
	if deps.Navigator == nil {
		deps.Navigator = NavigatorFunc(func(string) {})
	}
	if deps.Notifier == nil {
		deps.Notifier = nopNotifier{}
	}
	if deps.Logger != nil {
		opts = append([]store.Option{store.WithLogger(deps.Logger)}, opts...)
	}

	s := store.New(Initial(), Reduce, opts...)
	s.Register(eventEffects(s, deps)...)
	s.Register(teamEffects(deps)...)
	s.Register(employeeEffects(deps)...)
	s.Register(authEffects(deps)...)
	return s
}

// failed logs an API error. Failed calls produce no outcome action.
func (d Deps) failed(ctx context.Context, operation string, err error) {
	if ctx.Err() != nil {
		logging.Component(ctx, d.Logger, "effects", operation).Debug("request cancelled")
		return
	}
	logging.Component(ctx, d.Logger, "effects", operation).Warn("request failed",
		"kind", api.ErrorKind(err),
		"error", err,
	)
}

func (d Deps) rejected(ctx context.Context, operation string) {
	logging.Component(ctx, d.Logger, "effects", operation).Warn("server rejected request")
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
