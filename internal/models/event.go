package models

import "time"

// Event is a calendar entry. ID 0 marks an event the server has not confirmed yet.
type Event struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Details   string     `json:"details"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	Team      *Team      `json:"team,omitempty"`
	Employees []Employee `json:"employees"`
}

const DefaultEventDuration = time.Hour

func (e Event) Placeholder() bool {
	return e.ID == 0
}

func (e Event) TeamID() *int64 {
	if e.Team == nil {
		return nil
	}
	id := e.Team.ID
	return &id
}

// NewDraftEvent returns an unsaved event starting at start with the default duration.
func NewDraftEvent(start time.Time) Event {
	return Event{
		Start:     start,
		End:       start.Add(DefaultEventDuration),
		Employees: []Employee{},
	}
}
