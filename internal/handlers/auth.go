package handlers

import (
	"net/http"

	"github.com/hilbertsen/teamcal/internal/middleware"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type AuthHandler struct {
	authService  AuthServiceInterface
	secureCookie bool
	// disabled reports every visitor as logged in.
	disabled bool
}

func NewAuthHandler(authService AuthServiceInterface, secureCookie, disabled bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
		disabled:     disabled,
	}
}

func (h *AuthHandler) Login(c *drift.Context) {
	var req dto.Login
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, accepted, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		serviceError(c, "login", err)
		return
	}
	if accepted {
		middleware.SetSessionCookie(c, token, int(h.authService.Expiry().Seconds()), h.secureCookie)
	}
	ok(c, accepted)
}

func (h *AuthHandler) Logout(c *drift.Context) {
	if token := middleware.SessionToken(c); token != "" {
		h.authService.Logout(c.Request.Context(), token)
	}
	middleware.ClearSessionCookie(c, h.secureCookie)
	ok(c, true)
}

func (h *AuthHandler) LoggedIn(c *drift.Context) {
	if h.disabled {
		ok(c, true)
		return
	}
	ok(c, h.authService.Validate(c.Request.Context(), middleware.SessionToken(c)))
}

// ChangePassword requires a session; it is mounted behind the session middleware.
func (h *AuthHandler) ChangePassword(c *drift.Context) {
	var req dto.ChangePassword
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	changed, err := h.authService.ChangePassword(c.Request.Context(), req)
	if err != nil {
		serviceError(c, "change_password", err)
		return
	}
	ok(c, changed)
}
