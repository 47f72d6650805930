package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hilbertsen/teamcal/internal/middleware"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/hilbertsen/teamcal/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T, disabled bool) (*testutil.MockAuthService, http.Handler) {
	t.Helper()
	mockAuthService := new(testutil.MockAuthService)
	handler := NewAuthHandler(mockAuthService, false, disabled)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)
	app.Get("/logged_in", handler.LoggedIn)
	app.Post("/change_password", handler.ChangePassword)
	return mockAuthService, app
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuthService, app := setupAuthTest(t, false)
	mockAuthService.On("Login", mock.Anything, dto.Login{Password: "secret"}).Return("token-1", true, nil)
	mockAuthService.On("Expiry").Return(time.Hour)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/login", dto.Login{Password: "secret"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope[bool](t, rec).Result)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Equal(t, "token-1", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mockAuthService, app := setupAuthTest(t, false)
	mockAuthService.On("Login", mock.Anything, dto.Login{Password: "nope"}).Return("", false, nil)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/login", dto.Login{Password: "nope"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[bool](t, rec)
	assert.True(t, env.Success)
	assert.False(t, env.Result)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_LoggedIn(t *testing.T) {
	mockAuthService, app := setupAuthTest(t, false)
	mockAuthService.On("Validate", mock.Anything, "token-1").Return(true)
	mockAuthService.On("Validate", mock.Anything, "").Return(false)

	req := httptest.NewRequest(http.MethodGet, "/logged_in", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "token-1"})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	assert.True(t, decodeEnvelope[bool](t, rec).Result)

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logged_in", nil))
	assert.False(t, decodeEnvelope[bool](t, rec).Result)
}

func TestAuthHandler_LoggedIn_Disabled(t *testing.T) {
	mockAuthService, app := setupAuthTest(t, true)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logged_in", nil))

	assert.True(t, decodeEnvelope[bool](t, rec).Result)
	mockAuthService.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}

func TestAuthHandler_Logout(t *testing.T) {
	mockAuthService, app := setupAuthTest(t, false)
	mockAuthService.On("Logout", mock.Anything, "token-1").Return()

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "token-1"})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	mockAuthService, app := setupAuthTest(t, false)
	req := dto.ChangePassword{OldPassword: "old", NewPassword: "new"}
	mockAuthService.On("ChangePassword", mock.Anything, req).Return(true, nil)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/change_password", req))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope[bool](t, rec).Result)
}
