package api

import (
	"context"
	"strconv"
	"time"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type EventService struct {
	client *Client
}

func NewEventService(client *Client) *EventService {
	return &EventService{client: client}
}

// List returns the events overlapping [start, end]. Nil bounds are omitted.
func (s *EventService) List(ctx context.Context, start, end *time.Time) ([]models.Event, error) {
	var events []models.Event
	if err := s.client.Get(ctx, "events", Params{"start": start, "end": end}, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *EventService) Create(ctx context.Context, event dto.CreateEvent) (int64, error) {
	var id int64
	if err := s.client.Post(ctx, "events", event, &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *EventService) Update(ctx context.Context, event dto.UpdateEvent) (bool, error) {
	var ok bool
	if err := s.client.Put(ctx, "events", event, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := s.client.Delete(ctx, "events/"+strconv.FormatInt(id, 10), &ok); err != nil {
		return false, err
	}
	return ok, nil
}
