package middleware

import (
	"context"
	"net/http"

	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	SessionCookie = "session"
	SessionKey    = "session_token"
)

// SessionValidator defines the methods needed by the session middleware
type SessionValidator interface {
	Validate(ctx context.Context, token string) bool
}

// Session rejects requests without a valid session cookie.
func Session(sessions SessionValidator) drift.HandlerFunc {
	return func(c *drift.Context) {
		token := SessionToken(c)
		if token == "" || !sessions.Validate(c.Request.Context(), token) {
			_ = c.JSON(http.StatusUnauthorized, dto.Failure("not logged in"))
			c.Abort()
			return
		}

		c.Set(SessionKey, token)
		c.Next()
	}
}

// SessionToken reads the session cookie. It returns "" when there is none.
func SessionToken(c *drift.Context) string {
	cookie, err := c.Request.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func SetSessionCookie(c *drift.Context, token string, maxAge int, secure bool) {
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	c.Response.Header().Add("Set-Cookie", cookie.String())
}

func ClearSessionCookie(c *drift.Context, secure bool) {
	SetSessionCookie(c, "", -1, secure)
}
