package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"golang.org/x/crypto/bcrypt"
)

const DefaultSessionExpiry = 24 * time.Hour

// AuthService guards writes with one shared password. Sessions are opaque
// tokens stored by hash.
type AuthService struct {
	mu       sync.RWMutex
	hash     []byte
	sessions map[string]time.Time
	expiry   time.Duration
	now      func() time.Time
}

func NewAuthService(password string, expiry time.Duration) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if expiry <= 0 {
		expiry = DefaultSessionExpiry
	}
	return &AuthService{
		hash:     hash,
		sessions: make(map[string]time.Time),
		expiry:   expiry,
		now:      time.Now,
	}, nil
}

// Login checks the password and opens a session. ok is false on a wrong password.
func (s *AuthService) Login(ctx context.Context, req dto.Login) (token string, ok bool, err error) {
	if err := models.ValidateLogin(req); err != nil {
		return "", false, err
	}
	if !s.matches(req.Password) {
		return "", false, nil
	}

	token, err = newToken()
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	s.sessions[HashToken(token)] = s.now().Add(s.expiry)
	s.mu.Unlock()
	return token, true, nil
}

func (s *AuthService) matches(password string) bool {
	s.mu.RLock()
	hash := s.hash
	s.mu.RUnlock()
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

func (s *AuthService) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	expires, ok := s.sessions[HashToken(token)]
	return ok && s.now().Before(expires)
}

func (s *AuthService) Logout(ctx context.Context, token string) {
	s.mu.Lock()
	delete(s.sessions, HashToken(token))
	s.mu.Unlock()
}

// ChangePassword replaces the password when old matches. Other sessions stay open.
func (s *AuthService) ChangePassword(ctx context.Context, req dto.ChangePassword) (bool, error) {
	if err := models.ValidateChangePassword(req); err != nil {
		return false, err
	}
	if !s.matches(req.OldPassword) {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	s.hash = hash
	s.mu.Unlock()
	return true, nil
}

func (s *AuthService) CleanupExpired(ctx context.Context) int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for hash, expires := range s.sessions {
		if !now.Before(expires) {
			delete(s.sessions, hash)
			removed++
		}
	}
	return removed
}

func (s *AuthService) Expiry() time.Duration {
	return s.expiry
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
