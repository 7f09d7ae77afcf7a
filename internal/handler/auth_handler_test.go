package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

type stubSessionService struct {
	loginErr      error
	logoutErr     error
	authenticated bool
	loggedOut     bool
	lastLogin     dto.LoginRequest
}

func (s *stubSessionService) Login(ctx context.Context, req dto.LoginRequest) error {
	s.lastLogin = req
	return s.loginErr
}

func (s *stubSessionService) Logout(ctx context.Context) error {
	if s.logoutErr != nil {
		return s.logoutErr
	}
	s.loggedOut = true
	s.authenticated = false
	return nil
}

func (s *stubSessionService) Status() dto.SessionStatus {
	return dto.SessionStatus{Authenticated: s.authenticated}
}

func TestAuthHandlerLogin(t *testing.T) {
	sessions := &stubSessionService{}
	h := NewAuthHandler(sessions)

	c, recorder := newStudentTestContext(t, http.MethodPost, "/session/login", `{"username":"admin","password":"secret"}`)
	h.Login(c)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "admin", sessions.lastLogin.Username)
	assert.Contains(t, recorder.Body.String(), `"authenticated":true`)
}

func TestAuthHandlerLoginRejected(t *testing.T) {
	sessions := &stubSessionService{loginErr: appErrors.ErrInvalidCredentials}
	h := NewAuthHandler(sessions)

	c, recorder := newStudentTestContext(t, http.MethodPost, "/session/login", `{"username":"admin","password":"wrong"}`)
	h.Login(c)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	env := decodeEnvelope(t, recorder)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalid username or password", env.Error.Message)
}

func TestAuthHandlerLoginBadJSON(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{})

	c, recorder := newStudentTestContext(t, http.MethodPost, "/session/login", `{"username":`)
	h.Login(c)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	env := decodeEnvelope(t, recorder)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalid username or password", env.Error.Message)
}

func TestAuthHandlerLogout(t *testing.T) {
	sessions := &stubSessionService{authenticated: true}
	h := NewAuthHandler(sessions)

	c, recorder := newStudentTestContext(t, http.MethodPost, "/session/logout", "")
	h.Logout(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.True(t, sessions.loggedOut)
}

func TestAuthHandlerStatus(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{authenticated: true})

	c, recorder := newStudentTestContext(t, http.MethodGet, "/session", "")
	h.Status(c)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"authenticated":true`)
}
