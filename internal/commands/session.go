package commands

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hilbertsen/teamcal/internal/api"
	"gopkg.in/yaml.v3"
)

const sessionCookie = "session"

// savedSession is the session cookie kept between runs.
type savedSession struct {
	APIURL string    `yaml:"api_url"`
	Token  string    `yaml:"token"`
	Saved  time.Time `yaml:"saved"`
}

// loadSession restores a saved cookie into client. A missing file or a
// session for another server is not an error.
func loadSession(path string, client *api.Client) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var s savedSession
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}
	if s.Token == "" || s.APIURL != client.BaseURL() {
		return nil
	}
	client.SetCookies([]*http.Cookie{{Name: sessionCookie, Value: s.Token, Path: "/"}})
	return nil
}

// saveSession writes the client's session cookie to path, or removes the
// file when the client has none.
func saveSession(path string, client *api.Client) error {
	if path == "" {
		return nil
	}

	var token string
	for _, c := range client.Cookies() {
		if c.Name == sessionCookie {
			token = c.Value
		}
	}
	if token == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove session file: %w", err)
		}
		return nil
	}

	data, err := yaml.Marshal(savedSession{APIURL: client.BaseURL(), Token: token, Saved: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
