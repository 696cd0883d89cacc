package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"legaldesk/internal/domain/user"
)

type UserRepository struct {
	db  *DB
	log *slog.Logger
}

func NewUserRepository(db *DB, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log.With("repository", "users"),
	}
}

// Create relies on the primary key to reject a taken username; the existing
// row is never touched.
func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	return r.db.WithConn(ctx, func(q Querier) error {
		_, err := q.ExecContext(ctx,
			`INSERT INTO users (username, password_hash, enrollment_id, created_at)
			 VALUES ($1, $2, $3, $4)`,
			u.Username, u.PasswordHash, u.EnrollmentID, u.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			if IsUniqueViolation(err) {
				return user.ErrDuplicateUser
			}
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	var (
		u       user.User
		created string
	)
	err := r.db.WithConn(ctx, func(q Querier) error {
		err := q.QueryRowContext(ctx,
			`SELECT username, password_hash, enrollment_id, created_at FROM users
			 WHERE username = $1`, username).
			Scan(&u.Username, &u.PasswordHash, &u.EnrollmentID, &created)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return user.ErrNotFound
			}
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	if t, perr := time.Parse(time.RFC3339, created); perr == nil {
		u.CreatedAt = t
	} else {
		r.log.Warn("unparsable created_at", "username", username, "value", created)
	}
	return u, nil
}
