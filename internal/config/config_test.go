package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TEAMCAL_API_URL", "http://api.test/v1")
	t.Setenv("TEAMCAL_HTTP_TIMEOUT", "not-a-duration")
	t.Setenv("TEAMCAL_AUTH", "false")
	t.Setenv("TEAMCAL_TIMEZONE", "UTC")
	t.Setenv("TEAMCAL_VIEW_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.test/v1/", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.Auth)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, DefaultView(), cfg.View)
}

func TestLoad_SessionFile(t *testing.T) {
	t.Setenv("TEAMCAL_SESSION_FILE", "/tmp/teamcal-session.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/teamcal-session.yaml", cfg.SessionFile)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("TEAMCAL_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadView_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view: day\nweek_start: monday\nrefresh: \"@every 30s\"\n"), 0o600))

	view, err := LoadView(path)
	require.NoError(t, err)

	assert.Equal(t, "day", view.View)
	assert.Equal(t, "monday", view.WeekStart)
	assert.Equal(t, "@every 30s", view.Refresh)
	assert.Equal(t, "@hourly", view.Rollover)
	assert.Equal(t, []int{0, 6}, view.ExcludeDays)
}

func TestLoadView_UnknownValuesFallBack(t *testing.T) {
	v := ViewConfig{View: "month", WeekStart: "friday", ExcludeDays: []int{}}
	v.Normalize()

	assert.Equal(t, "week", v.View)
	assert.Equal(t, "sunday", v.WeekStart)
	assert.Empty(t, v.ExcludeDays)
}

func TestLoadView_MissingFile(t *testing.T) {
	_, err := LoadView(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
