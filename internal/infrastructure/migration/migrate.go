package migration

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the database drivers for migrations
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"legaldesk/internal/config"
)

//go:embed sql
var migrations embed.FS

// Migrator is the part of migrate.Migrate that Migration drives.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine builds a migrator, so tests never touch a real database.
type MigrationEngine func(src source.Driver, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    config.DB
	engine MigrationEngine
}

func NewMigration(cfg config.DB, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		cfg:    cfg,
		engine: engine,
	}
}

func DefaultEngine(src source.Driver, databaseURL string) (Migrator, error) {
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// DatabaseURL turns the configured DSN into a golang-migrate URL.
func DatabaseURL(cfg config.DB) (string, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return "sqlite3://" + strings.TrimPrefix(cfg.DSN, "file:"), nil
	case config.DriverPostgres:
		for _, prefix := range []string{"postgres://", "postgresql://"} {
			if strings.HasPrefix(cfg.DSN, prefix) {
				return "pgx5://" + strings.TrimPrefix(cfg.DSN, prefix), nil
			}
		}
		return "", fmt.Errorf("postgres dsn must be a URL, got %q", cfg.DSN)
	default:
		return "", fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

func sourceFor(driver string) (source.Driver, error) {
	sub, err := fs.Sub(migrations, "sql/"+driver)
	if err != nil {
		return nil, err
	}
	return iofs.New(sub, ".")
}

func (mg *Migration) Up() (err error) {
	dbURL, err := DatabaseURL(mg.cfg)
	if err != nil {
		return err
	}
	src, err := sourceFor(mg.cfg.Driver)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := mg.engine(src, dbURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w; migration up error", err)
	}
	return nil
}
