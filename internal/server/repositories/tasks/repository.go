// Package tasks persists task records. The SQL implementation is the sole
// writer of the tasks table; order_index is only touched by Insert (new task
// at index 0), ShiftIndexesUp, CloseIndexGap and SetOrderIndex.
package tasks

import (
	"context"

	"github.com/soorajjain/taskBuddy-alter/internal/server/models"
)

type Repository interface {
	// Insert stores a fully populated task record.
	Insert(ctx context.Context, task *models.Task) error

	// GetByID returns the task or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Task, error)

	// ListByOwner returns the owner's tasks matching the filter, ordered by
	// order_index ascending.
	ListByOwner(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error)

	// Update applies the non-nil fields of upd. common.ErrNotFound when the
	// row does not exist.
	Update(ctx context.Context, id string, upd models.TaskUpdate) error

	// Delete removes the row. common.ErrNotFound when it does not exist.
	Delete(ctx context.Context, id string) error

	// ShiftIndexesUp increments order_index of every task of the owner by
	// one, making room at index 0.
	ShiftIndexesUp(ctx context.Context, userID string) error

	// CloseIndexGap decrements order_index of every task of the owner whose
	// index is greater than above.
	CloseIndexGap(ctx context.Context, userID string, above int) error

	// SetOrderIndex writes the index of a single task, scoped to the owner.
	// common.ErrNotFound when no row matched (missing or foreign task).
	SetOrderIndex(ctx context.Context, id string, userID string, index int) error
}
