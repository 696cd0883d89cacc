// Package apierr maps domain errors onto HTTP problem responses.
package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"legaldesk/internal/domain/advisory"
	"legaldesk/internal/domain/record"
	"legaldesk/internal/domain/session"
	"legaldesk/internal/domain/user"
	"legaldesk/internal/infrastructure/storage"
)

// From converts err to a huma status error. Unknown errors are logged and
// reported as 500 without details.
func From(log *slog.Logger, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, user.ErrDuplicateUser):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, session.ErrNotAuthenticated):
		return huma.Error401Unauthorized(err.Error())
	case errors.Is(err, user.ErrInvalidInput),
		errors.Is(err, record.ErrInvalidData),
		errors.Is(err, record.ErrNoOwner),
		errors.Is(err, advisory.ErrEmptyInput),
		errors.Is(err, advisory.ErrUnsupportedImage):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, record.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, session.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, storage.ErrUnavailable):
		log.Error("storage unavailable", "error", err)
		return huma.Error503ServiceUnavailable("storage unavailable")
	default:
		log.Error("unhandled error", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}

// Upstream reports a failed call to the advisory provider. Its message is
// shown to the user as is.
func Upstream(log *slog.Logger, err error) error {
	if errors.Is(err, advisory.ErrEmptyInput) || errors.Is(err, advisory.ErrUnsupportedImage) {
		return From(log, err)
	}
	log.Warn("advisory call failed", "error", err)
	return huma.Error502BadGateway(err.Error())
}
