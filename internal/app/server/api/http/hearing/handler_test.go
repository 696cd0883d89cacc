package hearing

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
	"legaldesk/internal/domain/hearing"
	"legaldesk/internal/domain/record"
	"legaldesk/internal/domain/session"
	"legaldesk/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Add(ctx context.Context, owner, caseName, category, date string) (hearing.Hearing, error) {
	args := m.Called(ctx, owner, caseName, category, date)
	return args.Get(0).(hearing.Hearing), args.Error(1)
}

func (m *MockService) Upcoming(ctx context.Context, owner string) ([]hearing.Hearing, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hearing.Hearing), args.Error(1)
}

type stubUsers struct{}

func (stubUsers) Register(context.Context, string, string, string) error { return nil }

func (stubUsers) Authenticate(_ context.Context, username, _ string) (user.User, error) {
	return user.User{Username: username, EnrollmentID: "E-1"}, nil
}

func authedCtx(t *testing.T, username string) context.Context {
	t.Helper()
	m := session.NewManager(time.Hour, slog.Default())
	token, s, err := m.Create()
	require.NoError(t, err)
	_, err = session.NewController(stubUsers{}, slog.Default()).Login(context.Background(), s, username, "pw")
	require.NoError(t, err)
	return auth.WithSession(context.Background(), s, token)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se))
	return se.GetStatus()
}

func TestHandler_add(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), huma.Middlewares{})

	want := hearing.Hearing{ID: 1, Owner: "adv1", CaseName: "A v. B"}
	service.On("Add", mock.Anything, "adv1", "A v. B", "", "2025-01-01").Return(want, nil)

	out, err := h.add(authedCtx(t, "adv1"), &addInput{Body: AddRequest{CaseName: "A v. B", Date: "2025-01-01"}})
	require.NoError(t, err)
	assert.Equal(t, want, out.Body)
}

func TestHandler_add_InvalidDate(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("Add", mock.Anything, "adv1", "A", "", "soon").Return(hearing.Hearing{}, record.Invalid("date must be YYYY-MM-DD"))

	_, err := h.add(authedCtx(t, "adv1"), &addInput{Body: AddRequest{CaseName: "A", Date: "soon"}})
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
}

func TestHandler_upcoming_EmptyIsArray(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("Upcoming", mock.Anything, "adv1").Return(nil, nil)

	out, err := h.upcoming(authedCtx(t, "adv1"), nil)
	require.NoError(t, err)
	assert.NotNil(t, out.Body.Hearings)
	assert.Empty(t, out.Body.Hearings)
}

func TestHandler_RequiresIdentity(t *testing.T) {
	h := NewHandler(new(MockService), slog.Default(), huma.Middlewares{})

	_, err := h.upcoming(context.Background(), nil)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}
