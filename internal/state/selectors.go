package state

import (
	"time"

	"github.com/hilbertsen/teamcal/internal/calendar"
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/store"
)

func SelectEvents(s AppState) []models.Event       { return s.Events.Events }
func SelectTeams(s AppState) []models.Team         { return s.Teams.Teams }
func SelectEmployees(s AppState) []models.Employee { return s.Employees.Employees }
func SelectLoggedIn(s AppState) models.AuthStatus  { return s.Auth.LoggedIn }

var teamsMap = store.Memo(store.SameSlice[models.Team], func(teams []models.Team) map[int64]models.Team {
	m := make(map[int64]models.Team, len(teams))
	for _, t := range teams {
		m[t.ID] = t
	}
	return m
})

var employeesMap = store.Memo(store.SameSlice[models.Employee], func(employees []models.Employee) map[int64]models.Employee {
	m := make(map[int64]models.Employee, len(employees))
	for _, e := range employees {
		m[e.ID] = e
	}
	return m
})

// SelectTeamsMap indexes teams by id. The map is shared between callers and
// must not be modified.
func SelectTeamsMap(s AppState) map[int64]models.Team {
	return teamsMap(s.Teams.Teams)
}

func SelectEmployeesMap(s AppState) map[int64]models.Employee {
	return employeesMap(s.Employees.Employees)
}

const (
	DefaultDayStart = 7
	DefaultDayEnd   = 22
)

type DayBounds struct {
	Start int
	End   int
}

// ComputeDayBounds widens the 7-22 window to fit every event's start and end hour.
func ComputeDayBounds(events []models.Event, loc *time.Location) DayBounds {
	b := DayBounds{Start: DefaultDayStart, End: DefaultDayEnd}
	for _, e := range events {
		b.Start = min(b.Start, e.Start.In(loc).Hour())
		b.End = max(b.End, e.End.In(loc).Hour())
	}
	return b
}

// NewDayBoundsSelector returns a memoised day bounds selector reading hours in loc.
func NewDayBoundsSelector(loc *time.Location) func(AppState) DayBounds {
	if loc == nil {
		loc = time.Local
	}
	memo := store.Memo(store.SameSlice[models.Event], func(events []models.Event) DayBounds {
		return ComputeDayBounds(events, loc)
	})
	return func(s AppState) DayBounds {
		return memo(s.Events.Events)
	}
}

var SelectDayBounds = NewDayBoundsSelector(time.Local)

func SelectEventDayStart(s AppState) int { return SelectDayBounds(s).Start }
func SelectEventDayEnd(s AppState) int   { return SelectDayBounds(s).End }

// AvailableEmployees returns employees not already assigned, compared by id.
func AvailableEmployees(employees, assigned []models.Employee) []models.Employee {
	taken := make(map[int64]struct{}, len(assigned))
	for _, e := range assigned {
		taken[e.ID] = struct{}{}
	}
	out := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if _, ok := taken[e.ID]; !ok {
			out = append(out, e)
		}
	}
	return out
}

var availableEmployees = store.Memo2(store.SameSlice[models.Employee], store.SameSlice[models.Employee], AvailableEmployees)

// SelectAvailableEmployees returns a selector of the employees that can still
// be added to draft.
func SelectAvailableEmployees(draft models.Event) func(AppState) []models.Employee {
	return func(s AppState) []models.Employee {
		return availableEmployees(s.Employees.Employees, draft.Employees)
	}
}

var calendarEvents = store.Memo(store.SameSlice[models.Event], calendar.FromEvents)

func SelectCalendarEvents(s AppState) []calendar.Event {
	return calendarEvents(s.Events.Events)
}

// SelectLoggedInDefined calls fn with the auth status once it is known and
// again whenever it changes. The unknown state is never reported.
func SelectLoggedInDefined(s *Store, fn func(loggedIn bool)) func() {
	return store.Select(s, SelectLoggedIn, store.Comparable[models.AuthStatus], func(status models.AuthStatus) {
		if loggedIn, ok := status.Definite(); ok {
			fn(loggedIn)
		}
	})
}
