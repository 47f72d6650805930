package state

import (
	"time"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type EventAction interface {
	Type() string
	eventAction()
}

type (
	// GetEvents fetches the events between Start and End. Nil bounds are unbounded.
	GetEvents struct {
		Start *time.Time
		End   *time.Time
	}
	GetEventsOk struct {
		Events []models.Event
	}
	CreateEvent struct {
		Event dto.CreateEvent
	}
	CreateEventOk struct {
		Event models.Event
	}
	// CreateEventFailed withdraws the placeholder of a create the server never confirmed.
	CreateEventFailed struct{}
	UpdateEvent struct {
		Event dto.UpdateEvent
	}
	UpdateEventOk struct {
		Event models.Event
	}
	DeleteEvent struct {
		ID int64
	}
	DeleteEventOk struct {
		ID int64
	}
)

func (GetEvents) Type() string         { return "[Event] Get events" }
func (GetEventsOk) Type() string       { return "[Event] Get events Ok" }
func (CreateEvent) Type() string       { return "[Event] Create event" }
func (CreateEventOk) Type() string     { return "[Event] Create event Ok" }
func (CreateEventFailed) Type() string { return "[Event] Create event Failed" }
func (UpdateEvent) Type() string       { return "[Event] Update event" }
func (UpdateEventOk) Type() string     { return "[Event] Update event Ok" }
func (DeleteEvent) Type() string       { return "[Event] Delete event" }
func (DeleteEventOk) Type() string     { return "[Event] Delete event Ok" }

func (GetEvents) eventAction()         {}
func (GetEventsOk) eventAction()       {}
func (CreateEvent) eventAction()       {}
func (CreateEventOk) eventAction()     {}
func (CreateEventFailed) eventAction() {}
func (UpdateEvent) eventAction()       {}
func (UpdateEventOk) eventAction()     {}
func (DeleteEvent) eventAction()       {}
func (DeleteEventOk) eventAction()     {}
