package services

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type eventRecord struct {
	id          int64
	title       string
	details     string
	start       time.Time
	end         time.Time
	teamID      *int64
	employeeIDs []int64
}

// EventService keeps events with references to teams and employees, which
// are resolved on read.
type EventService struct {
	teams     *TeamService
	employees *EmployeeService

	mu     sync.RWMutex
	nextID int64
	events map[int64]eventRecord
}

func NewEventService(teams *TeamService, employees *EmployeeService) *EventService {
	return &EventService{
		teams:     teams,
		employees: employees,
		events:    make(map[int64]eventRecord),
	}
}

// List returns events overlapping [start, end], ordered by start. Nil bounds
// are open.
func (s *EventService) List(ctx context.Context, start, end *time.Time) ([]models.Event, error) {
	s.mu.RLock()
	records := make([]eventRecord, 0, len(s.events))
	for _, r := range s.events {
		if start != nil && r.end.Before(*start) {
			continue
		}
		if end != nil && r.start.After(*end) {
			continue
		}
		records = append(records, r)
	}
	s.mu.RUnlock()

	slices.SortFunc(records, func(a, b eventRecord) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	events := make([]models.Event, len(records))
	for i, r := range records {
		events[i] = s.resolve(ctx, r)
	}
	return events, nil
}

func (s *EventService) resolve(ctx context.Context, r eventRecord) models.Event {
	e := models.Event{
		ID:        r.id,
		Title:     r.title,
		Details:   r.details,
		Start:     r.start,
		End:       r.end,
		Employees: s.employees.Resolve(r.employeeIDs),
	}
	if r.teamID != nil {
		if t, ok := s.teams.GetByID(ctx, *r.teamID); ok {
			e.Team = &t
		}
	}
	return e
}

func record(id int64, req dto.CreateEvent) eventRecord {
	end := req.End
	if end.IsZero() {
		end = req.Start
	}
	return eventRecord{
		id:          id,
		title:       req.Title,
		details:     req.Details,
		start:       req.Start.UTC(),
		end:         end.UTC(),
		teamID:      req.TeamID,
		employeeIDs: slices.Clone(req.EmployeeIDs),
	}
}

func (s *EventService) Create(ctx context.Context, req dto.CreateEvent) (int64, error) {
	if err := models.ValidateCreateEvent(req); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.events[s.nextID] = record(s.nextID, req)
	return s.nextID, nil
}

func (s *EventService) Update(ctx context.Context, req dto.UpdateEvent) (bool, error) {
	if err := models.ValidateUpdateEvent(req); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[req.ID]; !ok {
		return false, nil
	}
	s.events[req.ID] = record(req.ID, req.CreateEvent)
	return true, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return false, nil
	}
	delete(s.events, id)
	return true, nil
}
