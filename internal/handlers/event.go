package handlers

import (
	"net/http"
	"time"

	"github.com/hilbertsen/teamcal/internal/api"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type EventHandler struct {
	eventService EventServiceInterface
}

func NewEventHandler(eventService EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) List(c *drift.Context) {
	start, okStart := queryTime(c, "start")
	end, okEnd := queryTime(c, "end")
	if !okStart || !okEnd {
		fail(c, http.StatusBadRequest, "invalid date range")
		return
	}

	events, err := h.eventService.List(c.Request.Context(), start, end)
	if err != nil {
		serviceError(c, "list_events", err)
		return
	}
	ok(c, events)
}

// queryTime parses an optional ISO timestamp query parameter.
func queryTime(c *drift.Context, name string) (*time.Time, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}
	t, valid := api.ParseISO(raw)
	if !valid {
		return nil, false
	}
	return &t, true
}

func (h *EventHandler) Create(c *drift.Context) {
	var req dto.CreateEvent
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.eventService.Create(c.Request.Context(), req)
	if err != nil {
		serviceError(c, "create_event", err)
		return
	}
	ok(c, id)
}

func (h *EventHandler) Update(c *drift.Context) {
	var req dto.UpdateEvent
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.eventService.Update(c.Request.Context(), req)
	if err != nil {
		serviceError(c, "update_event", err)
		return
	}
	ok(c, updated)
}

func (h *EventHandler) Delete(c *drift.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}

	deleted, err := h.eventService.Delete(c.Request.Context(), id)
	if err != nil {
		serviceError(c, "delete_event", err)
		return
	}
	ok(c, deleted)
}
