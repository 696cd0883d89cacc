package user

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"legaldesk/internal/app/server/api/http/middleware/auth"
	"legaldesk/internal/domain/session"
	"legaldesk/internal/domain/user"
)

type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) Register(ctx context.Context, username, password, enrollmentID string) error {
	args := m.Called(ctx, username, password, enrollmentID)
	return args.Error(0)
}

func (m *MockAccounts) Login(ctx context.Context, s *session.Session, username, password string) (session.Identity, error) {
	args := m.Called(ctx, s, username, password)
	return args.Get(0).(session.Identity), args.Error(1)
}

func (m *MockAccounts) Logout(s *session.Session) {
	m.Called(s)
}

type MockTerminator struct {
	mock.Mock
}

func (m *MockTerminator) End(token string) {
	m.Called(token)
}

func (m *MockTerminator) ExpiredCookie() *http.Cookie {
	return &http.Cookie{Name: "legaldesk_session", MaxAge: -1}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se), "expected huma status error, got %v", err)
	return se.GetStatus()
}

func newSessionCtx(t *testing.T) (context.Context, *session.Session, string) {
	t.Helper()
	m := session.NewManager(time.Hour, slog.Default())
	token, s, err := m.Create()
	require.NoError(t, err)
	return auth.WithSession(context.Background(), s, token), s, token
}

func TestHandler_register(t *testing.T) {
	accounts := new(MockAccounts)
	h := NewHandler(accounts, new(MockTerminator), slog.Default(), huma.Middlewares{})

	accounts.On("Register", mock.Anything, "adv1", "pw", "E-1").Return(nil).Once()
	out, err := h.register(context.Background(), &registerInput{Body: RegisterRequest{Username: "adv1", Password: "pw", EnrollmentID: "E-1"}})
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)

	accounts.On("Register", mock.Anything, "adv1", "pw2", "E-2").Return(user.ErrDuplicateUser).Once()
	_, err = h.register(context.Background(), &registerInput{Body: RegisterRequest{Username: "adv1", Password: "pw2", EnrollmentID: "E-2"}})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	accounts.AssertExpectations(t)
}

func TestHandler_login(t *testing.T) {
	accounts := new(MockAccounts)
	h := NewHandler(accounts, new(MockTerminator), slog.Default(), huma.Middlewares{})
	ctx, s, _ := newSessionCtx(t)

	accounts.On("Login", mock.Anything, s, "adv1", "bad").Return(session.Identity{}, user.ErrInvalidCredentials)

	_, err := h.login(ctx, &loginInput{Body: LoginRequest{Username: "adv1", Password: "bad"}})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestHandler_state_Anonymous(t *testing.T) {
	h := NewHandler(new(MockAccounts), new(MockTerminator), slog.Default(), huma.Middlewares{})
	ctx, _, _ := newSessionCtx(t)

	out, err := h.state(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "anonymous", out.Body.State)
	assert.Empty(t, out.Body.Username)
}

func TestHandler_state_NoSession(t *testing.T) {
	h := NewHandler(new(MockAccounts), new(MockTerminator), slog.Default(), huma.Middlewares{})

	_, err := h.state(context.Background(), nil)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestHandler_logout(t *testing.T) {
	accounts := new(MockAccounts)
	h := NewHandler(accounts, new(MockTerminator), slog.Default(), huma.Middlewares{})
	ctx, s, _ := newSessionCtx(t)

	accounts.On("Logout", s).Return()

	out, err := h.logout(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "anonymous", out.Body.State)
	accounts.AssertExpectations(t)
}

func TestHandler_end(t *testing.T) {
	accounts := new(MockAccounts)
	sessions := new(MockTerminator)
	h := NewHandler(accounts, sessions, slog.Default(), huma.Middlewares{})
	ctx, s, token := newSessionCtx(t)

	accounts.On("Logout", s).Return()
	sessions.On("End", token).Return()

	out, err := h.end(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, -1, out.SetCookie.MaxAge)
	assert.Equal(t, "anonymous", out.Body.State)
	accounts.AssertExpectations(t)
	sessions.AssertExpectations(t)
}
