package services

import (
	"testing"
	"time"

	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages_SendListMarkRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db)
	user := createTestUser(t, db, "user")
	other := createTestUser(t, db, "user")

	require.NoError(t, svc.Send(user.ID, "Your submission has been approved.", nil))

	inbox, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.False(t, inbox[0].Read)

	// Only the recipient may mark a message read.
	err = svc.MarkRead(other.ID, inbox[0].ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	require.NoError(t, svc.MarkRead(user.ID, inbox[0].ID))

	inbox, err = svc.ListForUser(user.ID)
	require.NoError(t, err)
	assert.True(t, inbox[0].Read)
}

func TestMessages_RetentionSweep(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db)
	user := createTestUser(t, db, "user")

	old := models.AdminMessage{
		UserID:    user.ID,
		Message:   "stale notice",
		CreatedAt: time.Now().Add(-96 * time.Hour),
	}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, svc.Send(user.ID, "fresh notice", nil))

	deleted, err := svc.DeleteOlderThan(72 * time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	inbox, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "fresh notice", inbox[0].Message)
}

func TestAdoptions_ListAvailableFiltersPendingAndHidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdoptionService(db)
	admin, _ := newAdminService(db)
	owner := createTestUser(t, db, "user")

	approved := createTestAdoption(t, db, owner.ID)
	require.NoError(t, admin.ApproveAdoption(approved.ID, true))

	createTestAdoption(t, db, owner.ID) // still pending

	rejected := createTestAdoption(t, db, owner.ID)
	require.NoError(t, admin.ApproveAdoption(rejected.ID, false))

	listings, err := svc.ListAvailable(20)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, approved.ID, listings[0].ID)
}
