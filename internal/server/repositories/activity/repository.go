// Package activity persists the append-only audit log. Entries are written
// once and never updated or deleted.
package activity

import (
	"context"

	"github.com/soorajjain/taskBuddy-alter/internal/server/models"
)

type Repository interface {
	// Insert appends one entry.
	Insert(ctx context.Context, entry *models.ActivityEntry) error

	// ListByOwner returns the owner's entries newest first. A non-empty
	// taskID narrows the result to a single task.
	ListByOwner(ctx context.Context, userID string, taskID string) ([]*models.ActivityEntry, error)
}
