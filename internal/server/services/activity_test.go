package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soorajjain/taskBuddy-alter/internal/common"
	"github.com/soorajjain/taskBuddy-alter/internal/logging"
	"github.com/soorajjain/taskBuddy-alter/internal/server/models"
)

type fakeActivityRepo struct {
	insertErr error
	inserted  []*models.ActivityEntry

	listOut []*models.ActivityEntry
	listErr error

	lastUserID string
	lastTaskID string
}

func (f *fakeActivityRepo) Insert(ctx context.Context, entry *models.ActivityEntry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, entry)
	return nil
}

func (f *fakeActivityRepo) ListByOwner(ctx context.Context, userID string, taskID string) ([]*models.ActivityEntry, error) {
	f.lastUserID = userID
	f.lastTaskID = taskID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func newActivityService(t *testing.T) (*ActivityService, *fakeActivityRepo) {
	t.Helper()
	repo := &fakeActivityRepo{}
	rm := &fakeRM{activityRepo: repo}
	return NewActivityService(rm, logging.NewJSON(testWriter{})), repo
}

func TestAppend_Unauthenticated(t *testing.T) {
	svc, repo := newActivityService(t)

	err := svc.Append(context.Background(), "", "t1", "whatever")
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Empty(t, repo.inserted)
}

func TestAppend_StampsIDAndTimestamp(t *testing.T) {
	svc, repo := newActivityService(t)

	before := time.Now().UTC()
	err := svc.Append(context.Background(), "u1", "t1", `Task "A" created`)
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	entry := repo.inserted[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "t1", entry.TaskID)
	assert.Equal(t, "u1", entry.UserID)
	assert.Equal(t, `Task "A" created`, entry.Action)
	assert.False(t, entry.Timestamp.Before(before))
	assert.False(t, entry.Timestamp.After(time.Now().UTC()))
}

func TestAppend_InsertErrorPropagates(t *testing.T) {
	svc, repo := newActivityService(t)
	repo.insertErr = errors.New("db is down")

	err := svc.Append(context.Background(), "u1", "t1", "x")
	assert.Error(t, err)
}

func TestActivityList_Unauthenticated(t *testing.T) {
	svc, _ := newActivityService(t)

	_, err := svc.List(context.Background(), "", "")
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestActivityList_PassesScope(t *testing.T) {
	svc, repo := newActivityService(t)
	repo.listOut = []*models.ActivityEntry{{ID: "e1"}}

	got, err := svc.List(context.Background(), "u1", "t1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u1", repo.lastUserID)
	assert.Equal(t, "t1", repo.lastTaskID)
}

func TestActivityList_StoreErrorDegradesToEmpty(t *testing.T) {
	svc, repo := newActivityService(t)
	repo.listErr = errors.New("db is down")

	got, err := svc.List(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
