package services

import (
	"testing"

	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePost_IncrementsCounter(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createTestUser(t, db, "user")
	liker := createTestUser(t, db, "user")
	post := createTestPost(t, db, owner.ID)

	require.NoError(t, svc.LikePost(liker.ID, post.ID))

	var got models.Post
	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	assert.Equal(t, 1, got.LikesCount)

	liked, err := svc.IsLiked(liker.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikePost_MissingPost(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	liker := createTestUser(t, db, "user")

	err := svc.LikePost(liker.ID, uuid.New())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestLikePost_DoubleLikeRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createTestUser(t, db, "user")
	liker := createTestUser(t, db, "user")
	post := createTestPost(t, db, owner.ID)

	require.NoError(t, svc.LikePost(liker.ID, post.ID))

	err := svc.LikePost(liker.ID, post.ID)
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	// The failed call must not touch the counter.
	var got models.Post
	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	assert.Equal(t, 1, got.LikesCount)
}

func TestUnlikePost_WithoutLikeRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createTestUser(t, db, "user")
	user := createTestUser(t, db, "user")
	post := createTestPost(t, db, owner.ID)

	err := svc.UnlikePost(user.ID, post.ID)
	assert.ErrorIs(t, err, ErrNotLiked)

	var got models.Post
	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	assert.Equal(t, 0, got.LikesCount)
}

// Alternating like/unlike must keep the counter equal to the number of
// outstanding likes, and it may never go negative.
func TestLikeUnlike_CounterStaysConsistent(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createTestUser(t, db, "user")
	user := createTestUser(t, db, "user")
	post := createTestPost(t, db, owner.ID)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.LikePost(user.ID, post.ID))

		var got models.Post
		require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
		assert.Equal(t, 1, got.LikesCount)

		require.NoError(t, svc.UnlikePost(user.ID, post.ID))

		require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
		assert.Equal(t, 0, got.LikesCount)
	}

	// Counter matches presence rows at the end of the sequence.
	var rows int64
	db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&rows)
	assert.Zero(t, rows)
}

func TestLikePost_ManyUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createTestUser(t, db, "user")
	post := createTestPost(t, db, owner.ID)

	for i := 0; i < 4; i++ {
		user := createTestUser(t, db, "user")
		require.NoError(t, svc.LikePost(user.ID, post.ID))
	}

	var got models.Post
	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	assert.Equal(t, 4, got.LikesCount)

	var rows int64
	db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&rows)
	assert.EqualValues(t, 4, rows)
}
