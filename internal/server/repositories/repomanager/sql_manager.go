package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/soorajjain/taskBuddy-alter/internal/dbx"
	"github.com/soorajjain/taskBuddy-alter/internal/server/migrations"
	"github.com/soorajjain/taskBuddy-alter/internal/server/repositories/activity"
	"github.com/soorajjain/taskBuddy-alter/internal/server/repositories/tasks"
)

// Supported storage backends.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type SQLRepositoryManager struct {
	db       *sql.DB
	dialect  string
	tasks    tasks.Repository
	activity activity.Repository
}

// NewSQLRepositoryManager opens the configured backend. driver is
// DriverPostgres (dsn is a pgx connection string) or DriverSQLite (dsn is a
// file path or ":memory:").
func NewSQLRepositoryManager(driver, dsn string) (*SQLRepositoryManager, error) {

	var db *sql.DB
	var dialect string
	var err error

	switch driver {
	case DriverPostgres:
		db, err = sql.Open("pgx", dsn)
		dialect = "postgres"
	case DriverSQLite:
		db, err = sql.Open("sqlite", dsn)
		dialect = "sqlite3"
	default:
		return nil, fmt.Errorf("unknown database driver: %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &SQLRepositoryManager{
		db:       db,
		dialect:  dialect,
		tasks:    tasks.NewSQLRepository(db),
		activity: activity.NewSQLRepository(db),
	}, nil
}

func (m *SQLRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

func (m *SQLRepositoryManager) Activity() activity.Repository {
	return m.activity
}

func (m *SQLRepositoryManager) TasksWith(db dbx.DBTX) tasks.Repository {
	return tasks.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) ActivityWith(db dbx.DBTX) activity.Repository {
	return activity.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}
