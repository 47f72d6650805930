package state

import (
	"context"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/store"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

func eventEffects(s *Store, deps Deps) []*store.Effect {
	return []*store.Effect{
		store.On("get_events", store.Latest, func(ctx context.Context, a GetEvents) store.Action {
			events, err := deps.Events.List(ctx, a.Start, a.End)
			if err != nil {
				deps.failed(ctx, "get_events", err)
				return nil
			}
			return GetEventsOk{Events: events}
		}),

		store.On("create_event", store.Exhaust, func(ctx context.Context, a CreateEvent) store.Action {
			id, err := deps.Events.Create(ctx, a.Event)
			if err != nil {
				deps.failed(ctx, "create_event", err)
				return CreateEventFailed{}
			}
			return CreateEventOk{Event: resolveEvent(s.State(), id, a.Event)}
		}),

		store.On("update_event", store.Exhaust, func(ctx context.Context, a UpdateEvent) store.Action {
			ok, err := deps.Events.Update(ctx, a.Event)
			if err != nil {
				deps.failed(ctx, "update_event", err)
				return nil
			}
			if !ok {
				deps.rejected(ctx, "update_event")
				return nil
			}
			return UpdateEventOk{Event: resolveEvent(s.State(), a.Event.ID, a.Event.CreateEvent)}
		}),

		store.On("delete_event", store.Exhaust, func(ctx context.Context, a DeleteEvent) store.Action {
			ok, err := deps.Events.Delete(ctx, a.ID)
			if err != nil {
				deps.failed(ctx, "delete_event", err)
				return nil
			}
			if !ok {
				deps.rejected(ctx, "delete_event")
				return nil
			}
			return DeleteEventOk{ID: a.ID}
		}),
	}
}

// resolveEvent builds the confirmed event, taking team and employee
// snapshots from the slices as they are now. Unknown ids are skipped.
func resolveEvent(state AppState, id int64, draft dto.CreateEvent) models.Event {
	teams := SelectTeamsMap(state)
	employees := SelectEmployeesMap(state)

	event := models.Event{
		ID:        id,
		Title:     draft.Title,
		Details:   draft.Details,
		Start:     draft.Start,
		End:       endOrStart(draft),
		Employees: make([]models.Employee, 0, len(draft.EmployeeIDs)),
	}
	if draft.TeamID != nil {
		if team, ok := teams[*draft.TeamID]; ok {
			event.Team = &team
		}
	}
	for _, employeeID := range draft.EmployeeIDs {
		if employee, ok := employees[employeeID]; ok {
			event.Employees = append(event.Employees, employee)
		}
	}
	return event
}
