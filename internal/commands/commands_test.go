package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/hilbertsen/teamcal/internal/config"
	"github.com/hilbertsen/teamcal/internal/logging"
	"github.com/hilbertsen/teamcal/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct horse"

type cli struct {
	session string
}

// newCLI starts an API server and points the command environment at it.
func newCLI(t *testing.T, auth bool) *cli {
	t.Helper()
	color.NoColor = true

	svc, err := server.NewServices(testPassword, time.Hour)
	require.NoError(t, err)
	cfg := &config.Config{
		Auth:   auth,
		Server: config.ServerConfig{Env: "test", Origins: []string{"*"}},
	}
	srv := httptest.NewServer(server.New(cfg, svc, logging.Discard()))
	t.Cleanup(srv.Close)

	c := &cli{session: filepath.Join(t.TempDir(), "session.yaml")}
	t.Setenv("TEAMCAL_API_URL", srv.URL)
	t.Setenv("TEAMCAL_AUTH", strconv.FormatBool(auth))
	t.Setenv("TEAMCAL_SESSION_FILE", c.session)
	t.Setenv("TEAMCAL_TIMEZONE", "UTC")
	t.Setenv("TEAMCAL_VIEW_FILE", "")
	t.Setenv("TEAMCAL_LOG_LEVEL", "error")
	return c
}

func (c *cli) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (c *cli) login(t *testing.T) {
	t.Helper()
	out, err := c.run(t, testPassword+"\n", "login")
	require.NoError(t, err)
	require.Contains(t, out, "logged in")
}

func TestLogin_KeepsSessionBetweenRuns(t *testing.T) {
	c := newCLI(t, true)

	out, err := c.run(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "not logged in")

	c.login(t)
	_, err = os.Stat(c.session)
	require.NoError(t, err)

	out, err = c.run(t, "", "status")
	require.NoError(t, err)
	assert.NotContains(t, out, "not logged in")

	out, err = c.run(t, "", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "already logged in")

	_, err = c.run(t, "", "logout")
	require.NoError(t, err)
	_, err = os.Stat(c.session)
	assert.True(t, os.IsNotExist(err))

	out, err = c.run(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "not logged in")
}

func TestLogin_WrongPassword(t *testing.T) {
	c := newCLI(t, true)

	_, err := c.run(t, "", "login", "--password", "battery staple")
	assert.ErrorIs(t, err, errWrongPassword)
}

func TestWrites_RequireLogin(t *testing.T) {
	c := newCLI(t, true)

	_, err := c.run(t, "", "teams", "create", "Night")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestTeamsAndEmployees(t *testing.T) {
	c := newCLI(t, true)
	c.login(t)

	out, err := c.run(t, "", "teams", "create", "Night", "--primary", "#102030")
	require.NoError(t, err)
	assert.Contains(t, out, "created team 1")

	out, err = c.run(t, "", "teams", "update", "1", "--name", "Nights")
	require.NoError(t, err)
	assert.Contains(t, out, "updated team 1")

	out, err = c.run(t, "", "employees", "create", "Kari", "--color", "#ff0000")
	require.NoError(t, err)
	assert.Contains(t, out, "created employee 1")

	out, err = c.run(t, "", "teams")
	require.NoError(t, err)
	assert.Contains(t, out, "Nights")
	assert.Contains(t, out, "#102030")

	out, err = c.run(t, "", "employees")
	require.NoError(t, err)
	assert.Contains(t, out, "Kari")

	out, err = c.run(t, "", "employees", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted employee 1")

	_, err = c.run(t, "", "employees", "delete", "1")
	assert.Error(t, err)
}

func TestEventLifecycle(t *testing.T) {
	c := newCLI(t, true)
	c.login(t)

	_, err := c.run(t, "", "teams", "create", "Day")
	require.NoError(t, err)
	_, err = c.run(t, "", "employees", "create", "Kari")
	require.NoError(t, err)

	out, err := c.run(t, "", "event", "create",
		"--title", "Standup",
		"--start", "2024-03-12 09:00",
		"--team", "1",
		"--employee", "1",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "created event 1")

	out, err = c.run(t, "", "events", "--view", "day", "--date", "2024-03-12")
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "09:00-10:00")
	assert.Contains(t, out, "Kari")

	out, err = c.run(t, "", "event", "move", "1", "--start", "2024-03-12 20:00")
	require.NoError(t, err)
	assert.Contains(t, out, "moved event 1")

	out, err = c.run(t, "", "events", "--view", "day", "--date", "2024-03-12")
	require.NoError(t, err)
	assert.Contains(t, out, "20:00-21:00")
	assert.Contains(t, out, "hours 07:00 - 22:59")

	out, err = c.run(t, "", "export", "--view", "week", "--date", "2024-03-12")
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:Standup")

	out, err = c.run(t, "", "event", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted event 1")

	out, err = c.run(t, "", "events", "--view", "day", "--date", "2024-03-12")
	require.NoError(t, err)
	assert.NotContains(t, out, "Standup")
	assert.Contains(t, out, "no events")
}

func TestEventCreate_ValidatesBeforeCalling(t *testing.T) {
	c := newCLI(t, false)

	_, err := c.run(t, "", "event", "create", "--start", "2024-03-12 09:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	_, err = c.run(t, "", "event", "create", "--title", "x", "--start", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time")
}

func TestPasswd(t *testing.T) {
	c := newCLI(t, true)
	c.login(t)

	out, err := c.run(t, "", "passwd", "--old", testPassword, "--new", "battery staple")
	require.NoError(t, err)
	assert.Contains(t, out, "Password changed")

	_, err = c.run(t, "", "passwd", "--old", testPassword, "--new", "again")
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	want := time.Date(2024, 3, 12, 9, 30, 0, 0, loc)

	for _, s := range []string{"2024-03-12 09:30", "2024-03-12T09:30", "2024-03-12T08:30:00Z"} {
		got, err := parseTime(s, loc)
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), s)
	}

	_, err := parseTime("12/03/2024", loc)
	assert.Error(t, err)
}
