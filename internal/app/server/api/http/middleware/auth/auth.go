package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"legaldesk/internal/config"
	"legaldesk/internal/domain/session"
)

type contextKey string

const (
	sessionKey contextKey = "session"
	tokenKey   contextKey = "session_token"
)

// Auth binds requests to sessions through a cookie.
type Auth struct {
	api      huma.API
	sessions *session.Manager
	cookie   config.Session
	log      *slog.Logger
}

func New(api huma.API, sessions *session.Manager, cookie config.Session, log *slog.Logger) *Auth {
	return &Auth{
		api:      api,
		sessions: sessions,
		cookie:   cookie,
		log:      log.With("component", "auth_middleware"),
	}
}

// Session attaches the caller's session to the context, starting a new
// anonymous one (and setting the cookie) when the cookie is missing or stale.
func (a *Auth) Session() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := readCookie(ctx, a.cookie.CookieName)

		s, err := a.sessions.Get(token)
		if err != nil {
			token, s, err = a.sessions.Create()
			if err != nil {
				a.log.Error("create session", "error", err)
				_ = huma.WriteErr(a.api, ctx, http.StatusInternalServerError, "cannot start session")
				return
			}
			ctx.AppendHeader("Set-Cookie", a.Cookie(token).String())
		}

		newCtx := context.WithValue(ctx.Context(), sessionKey, s)
		newCtx = context.WithValue(newCtx, tokenKey, token)
		next(huma.WithContext(ctx, newCtx))
	}
}

// Middleware rejects requests whose session is not authenticated. It must
// run after Session.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		s, ok := GetSession(ctx.Context())
		if !ok {
			_ = huma.WriteErr(a.api, ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if _, err := s.Identity(); err != nil {
			_ = huma.WriteErr(a.api, ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(ctx)
	}
}

// Cookie builds the session cookie for token.
func (a *Auth) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     a.cookie.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(a.cookie.TTL.Seconds()),
	}
}

// ExpiredCookie tells the browser to drop the session cookie.
func (a *Auth) ExpiredCookie() *http.Cookie {
	c := a.Cookie("")
	c.MaxAge = -1
	return c
}

// End destroys the session behind token.
func (a *Auth) End(token string) {
	a.sessions.End(token)
}

func readCookie(ctx huma.Context, name string) string {
	header := ctx.Header("Cookie")
	if header == "" {
		return ""
	}
	r := &http.Request{Header: http.Header{"Cookie": {header}}}
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

func GetSession(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

func GetToken(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey).(string)
	return t, ok
}

// GetIdentity returns the authenticated advocate of the request.
func GetIdentity(ctx context.Context) (session.Identity, bool) {
	s, ok := GetSession(ctx)
	if !ok {
		return session.Identity{}, false
	}
	id, err := s.Identity()
	if err != nil {
		return session.Identity{}, false
	}
	return id, true
}

// WithSession is used by handler tests to inject a session.
func WithSession(ctx context.Context, s *session.Session, token string) context.Context {
	ctx = context.WithValue(ctx, sessionKey, s)
	return context.WithValue(ctx, tokenKey, token)
}
