package tasks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/soorajjain/taskBuddy-alter/internal/common"
	"github.com/soorajjain/taskBuddy-alter/internal/dbx"
	"github.com/soorajjain/taskBuddy-alter/internal/server/models"
)

// SQLRepository implements Repository over database/sql. The SQL is kept
// dialect-neutral so the same code runs on PostgreSQL and SQLite.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func marshalAttachments(atts []models.Attachment) ([]byte, error) {
	if atts == nil {
		atts = []models.Attachment{}
	}
	return json.Marshal(atts)
}

func (r *SQLRepository) Insert(ctx context.Context, task *models.Task) error {

	atts, err := marshalAttachments(task.Attachments)
	if err != nil {
		return fmt.Errorf("encoding attachments: %w", err)
	}

	query :=
		`INSERT INTO tasks (id, user_id, title, description, category, due_on, track_status, attachments, order_index, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 `

	_, err = r.db.ExecContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, string(task.Category),
		task.DueOn, string(task.TrackStatus), atts, task.OrderIndex, task.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLRepository) scanTask(row interface {
	Scan(dest ...any) error
}) (*models.Task, error) {

	task := &models.Task{}
	var atts []byte

	err := row.Scan(&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Category, &task.DueOn, &task.TrackStatus, &atts,
		&task.OrderIndex, &task.CreatedAt)
	if err != nil {
		return nil, err
	}

	if len(atts) > 0 {
		if err := json.Unmarshal(atts, &task.Attachments); err != nil {
			return nil, fmt.Errorf("decoding attachments: %w", err)
		}
	}
	if task.Attachments == nil {
		task.Attachments = []models.Attachment{}
	}

	return task, nil
}

const taskColumns = "id, user_id, title, description, category, due_on, track_status, attachments, order_index, created_at"

func (r *SQLRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := r.scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *SQLRepository) ListByOwner(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error) {

	where := []string{"user_id = $1"}
	args := []any{userID}

	addClause := func(clause string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.Category != "" {
		addClause("category = $%d", string(filter.Category))
	}
	if filter.Status != "" {
		addClause("track_status = $%d", string(filter.Status))
	}
	// Due-date bounds skip tasks without a due date. ISO dates compare
	// correctly as strings.
	if filter.DueAfter != "" {
		addClause("due_on >= $%d", filter.DueAfter)
		where = append(where, "due_on <> ''")
	}
	if filter.DueBefore != "" {
		addClause("due_on <= $%d", filter.DueBefore)
		where = append(where, "due_on <> ''")
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY order_index ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Task{}
	for rows.Next() {
		task, err := r.scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLRepository) Update(ctx context.Context, id string, upd models.TaskUpdate) error {

	set := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		addSet("title", *upd.Title)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}
	if upd.Category != nil {
		addSet("category", string(*upd.Category))
	}
	if upd.DueOn != nil {
		addSet("due_on", *upd.DueOn)
	}
	if upd.TrackStatus != nil {
		addSet("track_status", string(*upd.TrackStatus))
	}
	if upd.Attachments != nil {
		atts, err := marshalAttachments(*upd.Attachments)
		if err != nil {
			return fmt.Errorf("encoding attachments: %w", err)
		}
		addSet("attachments", atts)
	}

	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *SQLRepository) ShiftIndexesUp(ctx context.Context, userID string) error {

	query := `UPDATE tasks SET order_index = order_index + 1 WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLRepository) CloseIndexGap(ctx context.Context, userID string, above int) error {

	query := `UPDATE tasks SET order_index = order_index - 1 WHERE user_id = $1 AND order_index > $2`

	if _, err := r.db.ExecContext(ctx, query, userID, above); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLRepository) SetOrderIndex(ctx context.Context, id string, userID string, index int) error {

	query := `UPDATE tasks SET order_index = $1 WHERE id = $2 AND user_id = $3`

	res, err := r.db.ExecContext(ctx, query, index, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
