package services

import (
	"context"
	"testing"
	"time"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func day(hour int) time.Time {
	return time.Date(2024, time.March, 12, hour, 0, 0, 0, time.UTC)
}

func TestTeamService_CRUD(t *testing.T) {
	svc := NewTeamService()
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.CreateTeam{Name: "Red", PrimaryColor: "#ff0000", SecondaryColor: "#aa0000"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	ok, err := svc.Update(ctx, models.Team{ID: id, Name: "Crimson", PrimaryColor: "#ff0000", SecondaryColor: "#aa0000"})
	require.NoError(t, err)
	assert.True(t, ok)

	teams, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Crimson", teams[0].Name)

	ok, err = svc.Update(ctx, models.Team{ID: 99, Name: "Ghost", PrimaryColor: "#ffffff", SecondaryColor: "#ffffff"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, _ = svc.Delete(ctx, id)
	assert.True(t, ok)
	ok, _ = svc.Delete(ctx, id)
	assert.False(t, ok)
}

func TestTeamService_CreateInvalid(t *testing.T) {
	_, err := NewTeamService().Create(context.Background(), dto.CreateTeam{})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestEventService_ListResolvesReferences(t *testing.T) {
	ctx := context.Background()
	teams := NewTeamService()
	employees := NewEmployeeService()
	events := NewEventService(teams, employees)

	teamID, err := teams.Create(ctx, dto.CreateTeam{Name: "Red", PrimaryColor: "#ff0000", SecondaryColor: "#aa0000"})
	require.NoError(t, err)
	annID, err := employees.Create(ctx, dto.CreateEmployee{Name: "Ann", Color: "#123456"})
	require.NoError(t, err)

	_, err = events.Create(ctx, dto.CreateEvent{Title: "Late", Start: day(15), End: day(16)})
	require.NoError(t, err)
	_, err = events.Create(ctx, dto.CreateEvent{
		Title:       "Early",
		Start:       day(8),
		End:         day(9),
		TeamID:      &teamID,
		EmployeeIDs: []int64{annID, 77},
	})
	require.NoError(t, err)

	list, err := events.List(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Early", list[0].Title)
	require.NotNil(t, list[0].Team)
	assert.Equal(t, "Red", list[0].Team.Name)
	require.Len(t, list[0].Employees, 1)
	assert.Equal(t, "Ann", list[0].Employees[0].Name)
	assert.Nil(t, list[1].Team)
	assert.NotNil(t, list[1].Employees)

	_, _ = teams.Delete(ctx, teamID)
	list, _ = events.List(ctx, nil, nil)
	assert.Nil(t, list[0].Team)
}

func TestEventService_ListFiltersRange(t *testing.T) {
	ctx := context.Background()
	events := NewEventService(NewTeamService(), NewEmployeeService())

	for _, h := range []int{6, 10, 20} {
		_, err := events.Create(ctx, dto.CreateEvent{Title: "e", Start: day(h), End: day(h + 1)})
		require.NoError(t, err)
	}

	start, end := day(9), day(12)
	list, err := events.List(ctx, &start, &end)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, day(10), list[0].Start)

	list, err = events.List(ctx, &start, nil)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestEventService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	events := NewEventService(NewTeamService(), NewEmployeeService())

	id, err := events.Create(ctx, dto.CreateEvent{Title: "a", Start: day(9)})
	require.NoError(t, err)

	ok, err := events.Update(ctx, dto.UpdateEvent{ID: id, CreateEvent: dto.CreateEvent{Title: "b", Start: day(10), End: day(11)}})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = events.Update(ctx, dto.UpdateEvent{ID: id + 1, CreateEvent: dto.CreateEvent{Title: "b", Start: day(10)}})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = events.Update(ctx, dto.UpdateEvent{CreateEvent: dto.CreateEvent{Title: "b", Start: day(10)}})
	assert.Error(t, err)

	ok, _ = events.Delete(ctx, id)
	assert.True(t, ok)
	list, _ := events.List(ctx, nil, nil)
	assert.Empty(t, list)
}

func newAuth(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService("password", time.Hour)
	require.NoError(t, err)
	return svc
}

func TestAuthService_LoginLogout(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(t)

	_, ok, err := svc.Login(ctx, dto.Login{Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, ok)

	token, ok, err := svc.Login(ctx, dto.Login{Password: "password"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, svc.Validate(ctx, token))
	assert.False(t, svc.Validate(ctx, "other"))

	svc.Logout(ctx, token)
	assert.False(t, svc.Validate(ctx, token))
}

func TestAuthService_SessionExpiry(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(t)
	now := time.Now()
	svc.now = func() time.Time { return now }

	token, _, err := svc.Login(ctx, dto.Login{Password: "password"})
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	assert.False(t, svc.Validate(ctx, token))
	assert.Equal(t, 1, svc.CleanupExpired(ctx))
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(t)

	ok, err := svc.ChangePassword(ctx, dto.ChangePassword{OldPassword: "nope", NewPassword: "new"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.ChangePassword(ctx, dto.ChangePassword{OldPassword: "password", NewPassword: "new"})
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, _ = svc.Login(ctx, dto.Login{Password: "new"})
	assert.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword(svc.hash, []byte("new")))
}
