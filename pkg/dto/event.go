package dto

import "time"

type CreateEvent struct {
	Title       string    `json:"title"`
	Details     string    `json:"details"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	TeamID      *int64    `json:"teamId,omitempty"`
	EmployeeIDs []int64   `json:"employeeIds"`
}

type UpdateEvent struct {
	ID int64 `json:"id"`
	CreateEvent
}

type EventsQuery struct {
	Start *time.Time
	End   *time.Time
}
