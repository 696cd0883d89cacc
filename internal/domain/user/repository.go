package user

import (
	"context"
)

type Repository interface {
	// Create fails with ErrDuplicateUser when the username is taken.
	Create(ctx context.Context, u User) error
	// FindByUsername fails with ErrNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (User, error)
}
