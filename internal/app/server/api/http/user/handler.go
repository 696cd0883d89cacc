package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"legaldesk/internal/app/server/api/http/apierr"
	"legaldesk/internal/app/server/api/http/middleware/auth"
	"legaldesk/internal/domain/session"
)

// Accounts is the part of session.Controller the handler needs.
type Accounts interface {
	Register(ctx context.Context, username, password, enrollmentID string) error
	Login(ctx context.Context, s *session.Session, username, password string) (session.Identity, error)
	Logout(s *session.Session)
}

// Terminator ends sessions and produces the cookie that clears them.
type Terminator interface {
	End(token string)
	ExpiredCookie() *http.Cookie
}

type Handler struct {
	accounts   Accounts
	sessions   Terminator
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(accounts Accounts, sessions Terminator, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		accounts:   accounts,
		sessions:   sessions,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.stateOp(), h.state)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.endOp(), h.end)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	err := h.accounts.Register(ctx, input.Body.Username, input.Body.Password, input.Body.EnrollmentID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &registerOutput{
		Body: RegisterResponse{Username: input.Body.Username, Status: "Ok"},
	}, nil
}

func (h *Handler) state(ctx context.Context, _ *struct{}) (*stateOutput, error) {
	s, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}
	return &stateOutput{Body: stateOf(s)}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*stateOutput, error) {
	s, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if _, err := h.accounts.Login(ctx, s, input.Body.Username, input.Body.Password); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &stateOutput{Body: stateOf(s)}, nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*stateOutput, error) {
	s, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	h.accounts.Logout(s)
	return &stateOutput{Body: stateOf(s)}, nil
}

func (h *Handler) end(ctx context.Context, _ *struct{}) (*endOutput, error) {
	if s, ok := auth.GetSession(ctx); ok {
		h.accounts.Logout(s)
	}
	if token, ok := auth.GetToken(ctx); ok {
		h.sessions.End(token)
	}

	return &endOutput{
		SetCookie: *h.sessions.ExpiredCookie(),
		Body:      StateResponse{State: session.Anonymous.String()},
	}, nil
}

func stateOf(s *session.Session) StateResponse {
	v := s.View()
	return StateResponse{
		State:        v.State.String(),
		Username:     v.Identity.Username,
		EnrollmentID: v.Identity.EnrollmentID,
	}
}
