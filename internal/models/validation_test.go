package models

import (
	"testing"
	"time"

	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateEvent(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		err := ValidateCreateEvent(dto.CreateEvent{Title: "Shift", Start: start, End: start.Add(time.Hour)})
		assert.NoError(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		err := ValidateCreateEvent(dto.CreateEvent{Title: "Shift", Start: start, End: start.Add(-time.Minute)})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.FieldErrors, "end")
		assert.NotContains(t, vErr.FieldErrors, "title")
	})

	t.Run("missing title", func(t *testing.T) {
		err := ValidateCreateEvent(dto.CreateEvent{Title: "  ", Start: start, End: start})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "title is required", vErr.FieldErrors["title"])
		assert.Equal(t, "validation failed: title", err.Error())
	})
}

func TestValidateUpdateEvent_RequiresID(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	err := ValidateUpdateEvent(dto.UpdateEvent{CreateEvent: dto.CreateEvent{Title: "Shift", Start: start, End: start}})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldErrors, "id")
}

func TestValidateCreateTeam(t *testing.T) {
	assert.NoError(t, ValidateCreateTeam(dto.CreateTeam{
		Name:           "Night",
		PrimaryColor:   DefaultTeamPrimaryColor,
		SecondaryColor: DefaultTeamSecondaryColor,
	}))

	err := ValidateCreateTeam(dto.CreateTeam{Name: "Night", PrimaryColor: "red", SecondaryColor: "#abc"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"primaryColor": "invalid color"}, vErr.FieldErrors)
}

func TestValidateTeam_MergesFieldErrors(t *testing.T) {
	err := ValidateTeam(Team{Name: "", PrimaryColor: "#fff", SecondaryColor: "#000"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.FieldErrors, 2)
	assert.Contains(t, vErr.FieldErrors, "id")
	assert.Contains(t, vErr.FieldErrors, "name")
}

func TestValidateEmployee(t *testing.T) {
	assert.NoError(t, ValidateEmployee(Employee{ID: 3, Name: "Kari", Color: DefaultEmployeeColor}))
	assert.Error(t, ValidateCreateEmployee(dto.CreateEmployee{Name: "Kari", Color: "#zzzzzz"}))
}

func TestValidateAuthPayloads(t *testing.T) {
	assert.Error(t, ValidateLogin(dto.Login{}))
	assert.NoError(t, ValidateLogin(dto.Login{Password: "secret"}))

	err := ValidateChangePassword(dto.ChangePassword{OldPassword: "old"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"newPassword"}, keys(vErr.FieldErrors))
}

func TestAuthStatus_Definite(t *testing.T) {
	_, ok := AuthUnknown.Definite()
	assert.False(t, ok)

	v, ok := AuthStatusOf(true).Definite()
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = AuthStatusOf(false).Definite()
	assert.True(t, ok)
	assert.False(t, v)
	assert.Equal(t, "unknown", AuthUnknown.String())
}

func TestNewDraftEvent(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	e := NewDraftEvent(start)

	assert.True(t, e.Placeholder())
	assert.Equal(t, start.Add(time.Hour), e.End)
	assert.Nil(t, e.TeamID())
	assert.Empty(t, EmployeeIDs(e.Employees))
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
