package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/slog"

	"legaldesk/internal/domain/record"
)

type scanner interface {
	Scan(dest ...any) error
}

// table describes how one record kind maps onto its owner-scoped table.
// Every such table has an integer id and an owner_username column.
type table[T any] struct {
	name string
	// columns excludes id and owner_username, in insert order.
	columns []string
	// orderable lists the columns ListByOwner may sort on.
	orderable []string
	values    func(item *T) []any
	scan      func(row scanner, item *T) error
	assign    func(item *T, id int64, owner string)
}

// OwnedRepository implements record.Repository for one table. Every read is
// filtered by owner_username.
type OwnedRepository[T any] struct {
	db  *DB
	t   table[T]
	log *slog.Logger
}

func newOwnedRepository[T any](db *DB, t table[T], log *slog.Logger) *OwnedRepository[T] {
	return &OwnedRepository[T]{
		db:  db,
		t:   t,
		log: log.With("repository", t.name),
	}
}

func (r *OwnedRepository[T]) selectColumns() string {
	return "id, owner_username, " + strings.Join(r.t.columns, ", ")
}

func placeholders(from, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ph, ", ")
}

func (r *OwnedRepository[T]) Create(ctx context.Context, owner string, item *T) (int64, error) {
	if owner == "" {
		return 0, record.ErrNoOwner
	}

	query := fmt.Sprintf(`INSERT INTO %s (owner_username, %s) VALUES (%s) RETURNING id`,
		r.t.name, strings.Join(r.t.columns, ", "), placeholders(1, len(r.t.columns)+1))
	args := append([]any{owner}, r.t.values(item)...)

	var id int64
	err := r.db.WithConn(ctx, func(q Querier) error {
		if err := q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.t.assign(item, id, owner)
	return id, nil
}

func (r *OwnedRepository[T]) orderClause(opts record.ListOptions) (string, error) {
	col := opts.OrderBy
	if col == "" {
		col = "id"
	}
	if col != "id" && !slices.Contains(r.t.orderable, col) {
		return "", record.Invalid("cannot order %s by %q", r.t.name, col)
	}

	dir := "ASC"
	if opts.Desc {
		dir = "DESC"
	}
	if col == "id" {
		return fmt.Sprintf(" ORDER BY id %s", dir), nil
	}
	// id breaks ties so equal keys keep insertion order
	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir), nil
}

func (r *OwnedRepository[T]) ListByOwner(ctx context.Context, owner string, opts record.ListOptions) ([]T, error) {
	if owner == "" {
		return nil, record.ErrNoOwner
	}
	order, err := r.orderClause(opts)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE owner_username = $1%s`, r.selectColumns(), r.t.name, order)
	args := []any{owner}
	if opts.Limit > 0 {
		query += " LIMIT $2"
		args = append(args, opts.Limit)
	}

	var items []T
	err = r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var item T
			if err := r.t.scan(rows, &item); err != nil {
				return fmt.Errorf("scan %s: %w", r.t.name, err)
			}
			items = append(items, item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *OwnedRepository[T]) FindByOwner(ctx context.Context, owner string, id int64) (T, error) {
	var item T
	if owner == "" {
		return item, record.ErrNoOwner
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE owner_username = $1 AND id = $2`, r.selectColumns(), r.t.name)
	err := r.db.WithConn(ctx, func(q Querier) error {
		if err := r.t.scan(q.QueryRowContext(ctx, query, owner, id), &item); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return record.ErrNotFound
			}
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	return item, err
}
