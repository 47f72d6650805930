package testutil

import (
	"fmt"
	"time"

	"github.com/hilbertsen/teamcal/internal/models"
)

// Fixtures builds domain values with unique ids and names.
type Fixtures struct {
	counter int64
}

func NewFixtures() *Fixtures {
	return &Fixtures{}
}

func (f *Fixtures) next() int64 {
	f.counter++
	return f.counter
}

type TeamOption func(*models.Team)

func WithTeamColors(primary, secondary string) TeamOption {
	return func(t *models.Team) {
		t.PrimaryColor = primary
		t.SecondaryColor = secondary
	}
}

// Team returns a team with default colors
func (f *Fixtures) Team(opts ...TeamOption) models.Team {
	id := f.next()
	team := models.Team{
		ID:             id,
		Name:           fmt.Sprintf("Team %d", id),
		PrimaryColor:   models.DefaultTeamPrimaryColor,
		SecondaryColor: models.DefaultTeamSecondaryColor,
	}
	for _, opt := range opts {
		opt(&team)
	}
	return team
}

// Employee returns an employee with the default color
func (f *Fixtures) Employee() models.Employee {
	id := f.next()
	return models.Employee{
		ID:    id,
		Name:  fmt.Sprintf("Employee %d", id),
		Color: models.DefaultEmployeeColor,
	}
}

type EventOption func(*models.Event)

func WithTeam(team models.Team) EventOption {
	return func(e *models.Event) {
		e.Team = &team
	}
}

func WithEmployees(employees ...models.Employee) EventOption {
	return func(e *models.Event) {
		e.Employees = employees
	}
}

// Event returns a confirmed event spanning start to end
func (f *Fixtures) Event(start, end time.Time, opts ...EventOption) models.Event {
	id := f.next()
	event := models.Event{
		ID:        id,
		Title:     fmt.Sprintf("Event %d", id),
		Start:     start,
		End:       end,
		Employees: []models.Employee{},
	}
	for _, opt := range opts {
		opt(&event)
	}
	return event
}

// At returns the given hour and minute on 2024-03-12 in UTC.
func At(hour, minute int) time.Time {
	return time.Date(2024, time.March, 12, hour, minute, 0, 0, time.UTC)
}
