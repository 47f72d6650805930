package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/hilbertsen/teamcal/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventTest(t *testing.T) (*testutil.MockEventAPI, http.Handler) {
	t.Helper()
	mockEventService := new(testutil.MockEventAPI)
	handler := NewEventHandler(mockEventService)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Get("/events", handler.List)
	app.Post("/events", handler.Create)
	app.Put("/events", handler.Update)
	app.Delete("/events/:id", handler.Delete)
	return mockEventService, app
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) dto.Envelope[T] {
	t.Helper()
	var env dto.Envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestEventHandler_List_WithRange(t *testing.T) {
	mockEventService, app := setupEventTest(t)

	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 16, 23, 59, 59, 0, time.UTC)
	events := []models.Event{{ID: 1, Title: "Standup", Start: start, End: start.Add(time.Hour), Employees: []models.Employee{}}}

	mockEventService.On("List", mock.Anything,
		mock.MatchedBy(func(p *time.Time) bool { return p != nil && p.Equal(start) }),
		mock.MatchedBy(func(p *time.Time) bool { return p != nil && p.Equal(end) }),
	).Return(events, nil)

	req := httptest.NewRequest(http.MethodGet, "/events?start=2024-03-10T00:00:00.000Z&end=2024-03-16T23:59:59.000Z", nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[[]models.Event](t, rec)
	assert.True(t, env.Success)
	require.Len(t, env.Result, 1)
	assert.Equal(t, "Standup", env.Result[0].Title)
	mockEventService.AssertExpectations(t)
}

func TestEventHandler_List_InvalidDate(t *testing.T) {
	_, app := setupEventTest(t)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events?start=yesterday", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope[any](t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid date range", env.Error)
}

func TestEventHandler_Create_Success(t *testing.T) {
	mockEventService, app := setupEventTest(t)

	body := dto.CreateEvent{
		Title:       "Planning",
		Start:       time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
		EmployeeIDs: []int64{1, 2},
	}
	mockEventService.On("Create", mock.Anything, mock.MatchedBy(func(req dto.CreateEvent) bool {
		return req.Title == "Planning" && req.Start.Equal(body.Start) && len(req.EmployeeIDs) == 2
	})).Return(int64(7), nil)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/events", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[int64](t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, int64(7), env.Result)
}

func TestEventHandler_Create_ValidationError(t *testing.T) {
	mockEventService, app := setupEventTest(t)

	mockEventService.On("Create", mock.Anything, mock.Anything).
		Return(int64(0), models.ValidateCreateEvent(dto.CreateEvent{}))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/events", dto.CreateEvent{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope[any](t, rec).Error, "title")
}

func TestEventHandler_Create_ServiceError(t *testing.T) {
	mockEventService, app := setupEventTest(t)
	mockEventService.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("disk full"))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/events", dto.CreateEvent{Title: "x"}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk full")
}

func TestEventHandler_Update_NotFound(t *testing.T) {
	mockEventService, app := setupEventTest(t)
	mockEventService.On("Update", mock.Anything, mock.Anything).Return(false, nil)

	body := dto.UpdateEvent{ID: 99, CreateEvent: dto.CreateEvent{Title: "x", Start: time.Now()}}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, jsonRequest(t, http.MethodPut, "/events", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[bool](t, rec)
	assert.True(t, env.Success)
	assert.False(t, env.Result)
}

func TestEventHandler_Delete(t *testing.T) {
	mockEventService, app := setupEventTest(t)
	mockEventService.On("Delete", mock.Anything, int64(3)).Return(true, nil)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/events/3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope[bool](t, rec).Result)
	mockEventService.AssertExpectations(t)
}

func TestEventHandler_Delete_InvalidID(t *testing.T) {
	_, app := setupEventTest(t)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/events/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
