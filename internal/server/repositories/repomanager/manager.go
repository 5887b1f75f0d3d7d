// Package repomanager wires the repositories to a concrete database and
// selects the storage backend (PostgreSQL or SQLite) from configuration.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/soorajjain/taskBuddy-alter/internal/dbx"
	"github.com/soorajjain/taskBuddy-alter/internal/server/repositories/activity"
	"github.com/soorajjain/taskBuddy-alter/internal/server/repositories/tasks"
)

// RepositoryManager hands out repositories bound either to the root
// connection or to a caller-supplied transaction handle.
type RepositoryManager interface {
	Conn() *sql.DB

	Tasks() tasks.Repository
	Activity() activity.Repository

	// TasksWith / ActivityWith bind a repository to a transaction obtained
	// from dbx.WithTx.
	TasksWith(db dbx.DBTX) tasks.Repository
	ActivityWith(db dbx.DBTX) activity.Repository

	RunMigrations(ctx context.Context) error
	Close() error
}
