package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soorajjain/taskBuddy-alter/internal/common"
	"github.com/soorajjain/taskBuddy-alter/internal/logging"
	"github.com/soorajjain/taskBuddy-alter/internal/server/models"
	"github.com/soorajjain/taskBuddy-alter/internal/server/repositories/repomanager"
)

// ActivityService records and reads the append-only audit log. Actions are
// stored as free text rather than a structured event enum: the log exists
// for humans reading history, not for machine queries.
type ActivityService struct {
	rm     repomanager.RepositoryManager
	logger logging.Logger
}

func NewActivityService(rm repomanager.RepositoryManager, logger logging.Logger) *ActivityService {
	return &ActivityService{
		rm:     rm,
		logger: logger.With("module", "activity"),
	}
}

// Append records one entry, timestamped with the current instant.
func (s *ActivityService) Append(ctx context.Context, ownerID, taskID, action string) error {

	if ownerID == "" {
		return common.ErrNotAuthenticated
	}

	entry := &models.ActivityEntry{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		Action:    action,
		UserID:    ownerID,
		Timestamp: time.Now().UTC(),
	}

	if err := s.rm.Activity().Insert(ctx, entry); err != nil {
		return fmt.Errorf("appending activity: %w", err)
	}

	return nil
}

// List returns the owner's entries newest first, optionally narrowed to one
// task. Store failures degrade to an empty result after a log line.
func (s *ActivityService) List(ctx context.Context, ownerID, taskID string) ([]*models.ActivityEntry, error) {

	if ownerID == "" {
		return nil, common.ErrNotAuthenticated
	}

	result, err := s.rm.Activity().ListByOwner(ctx, ownerID, taskID)
	if err != nil {
		s.logger.Error(ctx, "listing activity failed", "owner", ownerID, "error", err.Error())
		return []*models.ActivityEntry{}, nil
	}

	return result, nil
}
