package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	APIURL      string
	Auth        bool
	HTTPTimeout time.Duration
	LogLevel    string
	Location    *time.Location
	SessionFile string

	View   ViewConfig
	Server ServerConfig
}

// ViewConfig controls the calendar page behaviour. It can be overridden by a YAML file.
type ViewConfig struct {
	View        string `yaml:"view"`
	WeekStart   string `yaml:"week_start"`
	ExcludeDays []int  `yaml:"exclude_days"`
	Refresh     string `yaml:"refresh"`
	Rollover    string `yaml:"rollover"`
}

// ServerConfig is used by the local API server only.
type ServerConfig struct {
	Port     string
	Env      string
	Password string
	Origins  []string
}

func DefaultView() ViewConfig {
	return ViewConfig{
		View:        "week",
		WeekStart:   "sunday",
		ExcludeDays: []int{0, 6},
		Refresh:     "@every 1m",
		Rollover:    "@hourly",
	}
}

// Normalize fills missing or unknown values with defaults.
func (v *ViewConfig) Normalize() {
	d := DefaultView()
	switch v.View {
	case "day", "week", "two_weeks":
	default:
		v.View = d.View
	}
	switch v.WeekStart {
	case "monday", "sunday":
	default:
		v.WeekStart = d.WeekStart
	}
	if v.ExcludeDays == nil {
		v.ExcludeDays = d.ExcludeDays
	}
	if v.Refresh == "" {
		v.Refresh = d.Refresh
	}
	if v.Rollover == "" {
		v.Rollover = d.Rollover
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("TEAMCAL_HTTP_TIMEOUT", "30s"))
	if err != nil {
		timeout = 30 * time.Second
	}

	auth, err := strconv.ParseBool(getEnv("TEAMCAL_AUTH", "true"))
	if err != nil {
		auth = true
	}

	loc := time.Local
	if tz := getEnv("TEAMCAL_TIMEZONE", ""); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("failed to load timezone %q: %w", tz, err)
		}
	}

	view, err := LoadView(getEnv("TEAMCAL_VIEW_FILE", ""))
	if err != nil {
		return nil, err
	}

	return &Config{
		APIURL:      ensureTrailingSlash(getEnv("TEAMCAL_API_URL", "http://localhost:8080/")),
		Auth:        auth,
		HTTPTimeout: timeout,
		LogLevel:    getEnv("TEAMCAL_LOG_LEVEL", "info"),
		Location:    loc,
		SessionFile: getEnv("TEAMCAL_SESSION_FILE", defaultSessionFile()),
		View:        view,

		Server: ServerConfig{
			Port:     getEnv("PORT", "8080"),
			Env:      getEnv("ENV", "development"),
			Password: getEnv("TEAMCAL_PASSWORD", "password"),
			Origins:  splitList(getEnv("TEAMCAL_ALLOW_ORIGINS", "*")),
		},
	}, nil
}

// LoadView reads calendar view settings from path. An empty path yields defaults.
func LoadView(path string) (ViewConfig, error) {
	view := DefaultView()
	if path == "" {
		return view, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ViewConfig{}, fmt.Errorf("failed to read view config: %w", err)
	}
	if err := yaml.Unmarshal(data, &view); err != nil {
		return ViewConfig{}, fmt.Errorf("failed to parse view config: %w", err)
	}
	view.Normalize()
	return view, nil
}

func (c *ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// defaultSessionFile is the per-user file the CLI keeps its session in.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "teamcal", "session.yaml")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
