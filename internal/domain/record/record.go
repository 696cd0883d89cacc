// Package record holds the contract shared by every per-user, append-only
// record kind (hearings, invoices, drafts).
package record

import (
	"context"
	"time"
)

// DateLayout is the storage and wire format of record dates. Lexicographic
// order of this layout equals chronological order.
const DateLayout = "2006-01-02"

// ListOptions controls ListByOwner. OrderBy must be one of the columns the
// repository whitelists; empty means insertion order.
type ListOptions struct {
	OrderBy string
	Desc    bool
	Limit   int
}

// Repository is the generic append-only store. Every read is filtered by
// owner; there is no update or delete.
type Repository[T any] interface {
	Create(ctx context.Context, owner string, item *T) (int64, error)
	ListByOwner(ctx context.Context, owner string, opts ListOptions) ([]T, error)
	FindByOwner(ctx context.Context, owner string, id int64) (T, error)
}

// Today returns the current date truncated to a day in the given clock.
func Today(now func() time.Time) time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses DateLayout and wraps failures with ErrInvalidData.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, invalid("date must be YYYY-MM-DD")
	}
	return t, nil
}
