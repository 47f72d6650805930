package state

import (
	"time"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/store"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type EventState struct {
	Events []models.Event
}

func eventID(e models.Event) int64 { return e.ID }

func ReduceEvents(s EventState, action store.Action) EventState {
	a, ok := action.(EventAction)
	if !ok {
		return s
	}

	switch a := a.(type) {
	case GetEventsOk:
		s.Events = a.Events
	case CreateEvent:
		// At most one placeholder exists because create is exhausted while in flight.
		if !hasPlaceholder(s.Events) {
			s.Events = appendItem(s.Events, placeholder(a.Event))
		}
	case CreateEventOk:
		s.Events = appendItem(withoutPlaceholders(s.Events), a.Event)
	case CreateEventFailed:
		s.Events = withoutPlaceholders(s.Events)
	case UpdateEventOk:
		s.Events = replaceByID(s.Events, a.Event, eventID)
	case DeleteEventOk:
		s.Events = removeByID(s.Events, a.ID, eventID)
	}
	return s
}

func placeholder(draft dto.CreateEvent) models.Event {
	return models.Event{
		Title:     draft.Title,
		Details:   draft.Details,
		Start:     draft.Start,
		End:       endOrStart(draft),
		Employees: []models.Employee{},
	}
}

func hasPlaceholder(events []models.Event) bool {
	for _, e := range events {
		if e.Placeholder() {
			return true
		}
	}
	return false
}

func withoutPlaceholders(events []models.Event) []models.Event {
	if !hasPlaceholder(events) {
		return events
	}
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !e.Placeholder() {
			out = append(out, e)
		}
	}
	return out
}

func endOrStart(draft dto.CreateEvent) time.Time {
	if draft.End.IsZero() {
		return draft.Start
	}
	return draft.End
}
