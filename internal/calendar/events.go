package calendar

import (
	"time"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type Resizable struct {
	BeforeStart bool
	AfterEnd    bool
}

type Meta struct {
	ID        int64
	Details   string
	Team      *models.Team
	Employees []models.Employee
}

// Event is an entry as the calendar view renders it.
type Event struct {
	Title     string
	Start     time.Time
	End       time.Time
	Color     Colors
	Resizable Resizable
	Draggable bool
	Meta      Meta
}

func FromEvent(e models.Event) Event {
	return Event{
		Title:     e.Title,
		Start:     e.Start,
		End:       e.End,
		Color:     TeamColors(e.Team),
		Resizable: Resizable{BeforeStart: true, AfterEnd: true},
		Draggable: true,
		Meta: Meta{
			ID:        e.ID,
			Details:   e.Details,
			Team:      e.Team,
			Employees: e.Employees,
		},
	}
}

func FromEvents(events []models.Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = FromEvent(e)
	}
	return out
}

// NewEvent returns an unsaved calendar entry lasting one hour from start.
func NewEvent(start time.Time) Event {
	e := FromEvent(models.NewDraftEvent(start))
	e.Meta.Employees = []models.Employee{}
	return e
}

// Serialize turns a calendar entry back into the update payload. A missing
// end collapses to start.
func Serialize(e Event) dto.UpdateEvent {
	end := e.End
	if end.IsZero() {
		end = e.Start
	}
	req := dto.UpdateEvent{
		ID: e.Meta.ID,
		CreateEvent: dto.CreateEvent{
			Title:       e.Title,
			Details:     e.Meta.Details,
			Start:       e.Start,
			End:         end,
			EmployeeIDs: models.EmployeeIDs(e.Meta.Employees),
		},
	}
	if e.Meta.Team != nil {
		id := e.Meta.Team.ID
		req.TeamID = &id
	}
	return req
}

// Move shifts e to newStart, keeping its duration unless newEnd is given.
func Move(e Event, newStart time.Time, newEnd *time.Time) dto.UpdateEvent {
	duration := e.End.Sub(e.Start)
	e.Start = newStart
	if newEnd != nil {
		e.End = *newEnd
	} else {
		e.End = newStart.Add(duration)
	}
	return Serialize(e)
}
