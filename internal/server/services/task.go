// Package services implements the task board operations behind the HTTP API:
// task CRUD with manual ordering, the audit log, and attachment presigning.
// Every operation takes the caller's identity explicitly; nothing reads
// ambient session state.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soorajjain/taskBuddy-alter/internal/common"
	"github.com/soorajjain/taskBuddy-alter/internal/dbx"
	"github.com/soorajjain/taskBuddy-alter/internal/logging"
	"github.com/soorajjain/taskBuddy-alter/internal/server/models"
	"github.com/soorajjain/taskBuddy-alter/internal/server/repositories/repomanager"
)

// ActivityAppender records one audit entry. Implemented by ActivityService.
type ActivityAppender interface {
	Append(ctx context.Context, ownerID, taskID, action string) error
}

// TaskInput carries the caller-supplied fields of a new task.
type TaskInput struct {
	Title       string
	Description string
	Category    models.Category
	DueOn       string
	TrackStatus models.TrackStatus
	Attachments []models.Attachment
}

type TaskService struct {
	db       *sql.DB
	rm       repomanager.RepositoryManager
	activity ActivityAppender
	logger   logging.Logger
}

func NewTaskService(rm repomanager.RepositoryManager, activity ActivityAppender, logger logging.Logger) *TaskService {
	return &TaskService{
		db:       rm.Conn(),
		rm:       rm,
		activity: activity,
		logger:   logger.With("module", "tasks"),
	}
}

// logActivity appends an audit entry, logging and swallowing failures: a
// broken audit trail must not undo or block the task mutation it describes.
func (s *TaskService) logActivity(ctx context.Context, ownerID, taskID, action string) {
	if err := s.activity.Append(ctx, ownerID, taskID, action); err != nil {
		s.logger.Warn(ctx, "activity append failed", "task_id", taskID, "error", err.Error())
	}
}

func (s *TaskService) validateInput(category models.Category, status models.TrackStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown track status %q", common.ErrValidation, status)
	}
	if category != "" && !category.Valid() {
		return fmt.Errorf("%w: unknown category %q", common.ErrValidation, category)
	}
	return nil
}

// Create inserts a new task at order index 0. The index shift of the owner's
// existing tasks and the insert are applied as one transaction so no reader
// can observe duplicate or gapped indices.
func (s *TaskService) Create(ctx context.Context, ownerID string, input TaskInput) (*models.Task, error) {

	if ownerID == "" {
		return nil, common.ErrNotAuthenticated
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	status := input.TrackStatus
	if status == "" {
		status = models.StatusToDo
	}
	if err := s.validateInput(input.Category, status); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		DueOn:       input.DueOn,
		TrackStatus: status,
		Attachments: input.Attachments,
		OrderIndex:  0,
		CreatedAt:   time.Now().UTC(),
	}
	if task.Attachments == nil {
		task.Attachments = []models.Attachment{}
	}

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.rm.TasksWith(tx)
		if err := repo.ShiftIndexesUp(ctx, ownerID); err != nil {
			return err
		}
		return repo.Insert(ctx, task)
	})
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	s.logActivity(ctx, ownerID, task.ID, fmt.Sprintf("Task %q created", task.Title))
	s.logger.Info(ctx, "task created", "task_id", task.ID, "owner", ownerID)

	return task, nil
}

// List returns the owner's tasks ordered by order index. Store failures
// degrade to an empty result after a log line; the board renders empty
// rather than breaking.
func (s *TaskService) List(ctx context.Context, ownerID string, filter models.TaskFilter) ([]*models.Task, error) {

	if ownerID == "" {
		return nil, common.ErrNotAuthenticated
	}

	result, err := s.rm.Tasks().ListByOwner(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error(ctx, "listing tasks failed", "owner", ownerID, "error", err.Error())
		return []*models.Task{}, nil
	}

	return result, nil
}

// Update applies a partial update after re-verifying ownership. A status
// change is recorded in the activity log before the update is persisted.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, upd models.TaskUpdate) error {

	if ownerID == "" {
		return common.ErrNotAuthenticated
	}
	if upd.TrackStatus != nil && !upd.TrackStatus.Valid() {
		return fmt.Errorf("%w: unknown track status %q", common.ErrValidation, *upd.TrackStatus)
	}
	if upd.Category != nil && *upd.Category != "" && !upd.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", common.ErrValidation, *upd.Category)
	}

	task, err := s.rm.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.UserID != ownerID {
		return common.ErrNotAuthorized
	}

	if upd.TrackStatus != nil && *upd.TrackStatus != task.TrackStatus {
		s.logActivity(ctx, ownerID, taskID,
			fmt.Sprintf("Task %q status updated to %q", task.Title, *upd.TrackStatus))
	}

	if err := s.rm.Tasks().Update(ctx, taskID, upd); err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	return nil
}

// Delete removes the task after re-verifying ownership, then closes the gap
// its order index leaves behind so the owner's indices stay dense.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {

	if ownerID == "" {
		return common.ErrNotAuthenticated
	}

	task, err := s.rm.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.UserID != ownerID {
		return common.ErrNotAuthorized
	}

	s.logActivity(ctx, ownerID, taskID, fmt.Sprintf("Task %q marked as deleted", task.Title))

	err = dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.rm.TasksWith(tx)
		if err := repo.Delete(ctx, taskID); err != nil {
			return err
		}
		return repo.CloseIndexGap(ctx, ownerID, task.OrderIndex)
	})
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	s.logger.Info(ctx, "task deleted", "task_id", taskID, "owner", ownerID)

	return nil
}

// Reorder assigns order index = position to each listed task, all within one
// transaction: either the whole new ordering lands or none of it does. Each
// update is ownership-scoped, so a foreign or unknown id aborts the reorder.
func (s *TaskService) Reorder(ctx context.Context, ownerID string, orderedTaskIDs []string) error {

	if ownerID == "" {
		return common.ErrNotAuthenticated
	}
	if len(orderedTaskIDs) == 0 {
		return nil
	}

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.rm.TasksWith(tx)
		for position, id := range orderedTaskIDs {
			if err := repo.SetOrderIndex(ctx, id, ownerID, position); err != nil {
				return fmt.Errorf("task %s: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reordering tasks: %w", err)
	}

	return nil
}
