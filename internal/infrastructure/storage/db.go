// Package storage is the relational store behind the record repositories.
// sqlite3 is the default driver; postgres is reached through pgx's
// database/sql adapter. Queries use $N placeholders, which both accept.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"legaldesk/internal/config"
)

// ErrUnavailable means the store could not be opened or a connection could
// not be acquired. It fails the current request only.
var ErrUnavailable = errors.New("storage unavailable")

// Querier is the subset of database/sql the repositories use. *sql.Conn,
// *sql.Tx and *sql.DB all satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type DB struct {
	db     *sql.DB
	driver string
	log    *slog.Logger
}

// Open connects to the configured store and verifies it answers.
func Open(ctx context.Context, cfg config.DB, log *slog.Logger) (*DB, error) {
	name, err := sqlDriverName(cfg.Driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(name, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, cfg.Driver, err)
	}
	if cfg.Driver == config.DriverSQLite {
		// sqlite serialises writers anyway; one connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrUnavailable, cfg.Driver, err)
	}

	return New(sqlDB, cfg.Driver, log), nil
}

// New wraps an already opened *sql.DB.
func New(db *sql.DB, driver string, log *slog.Logger) *DB {
	return &DB{
		db:     db,
		driver: driver,
		log:    log.With("component", "storage", "driver", driver),
	}
}

func sqlDriverName(driver string) (string, error) {
	switch driver {
	case config.DriverSQLite:
		return "sqlite3", nil
	case config.DriverPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", driver)
	}
}

func (d *DB) Driver() string {
	return d.driver
}

func (d *DB) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// WithConn acquires a dedicated connection for fn and releases it on every
// exit path.
func (d *DB) WithConn(ctx context.Context, fn func(q Querier) error) error {
	conn, err := d.db.Conn(ctx)
	if err != nil {
		d.log.Error("acquire connection", "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			d.log.Warn("release connection", "error", cerr)
		}
	}()

	return fn(conn)
}

// WithTx runs fn in a transaction. It commits when fn returns nil and rolls
// back otherwise, including on panic.
func (d *DB) WithTx(ctx context.Context, fn func(q Querier) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrUnavailable, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(tx)
}

// IsUniqueViolation reports a primary key or unique constraint failure from
// either driver.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
