package activity

import (
	"context"
	"fmt"

	"github.com/soorajjain/taskBuddy-alter/internal/dbx"
	"github.com/soorajjain/taskBuddy-alter/internal/server/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Insert(ctx context.Context, entry *models.ActivityEntry) error {

	query :=
		`INSERT INTO activity_log (id, task_id, user_id, action, ts)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.TaskID, entry.UserID, entry.Action, entry.Timestamp)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLRepository) ListByOwner(ctx context.Context, userID string, taskID string) ([]*models.ActivityEntry, error) {

	query :=
		`SELECT id, task_id, user_id, action, ts FROM activity_log
		 WHERE user_id = $1
		 ORDER BY ts DESC`
	args := []any{userID}

	if taskID != "" {
		query =
			`SELECT id, task_id, user_id, action, ts FROM activity_log
			 WHERE user_id = $1 AND task_id = $2
			 ORDER BY ts DESC`
		args = append(args, taskID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.ActivityEntry{}
	for rows.Next() {
		entry := &models.ActivityEntry{}
		if err := rows.Scan(&entry.ID, &entry.TaskID, &entry.UserID, &entry.Action, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
