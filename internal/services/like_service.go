package services

import (
	"errors"

	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAlreadyLiked = errors.New("already liked")
	ErrNotLiked     = errors.New("not liked")
	ErrPostNotFound = errors.New("post not found")
)

// LikeService toggles the like presence record and the post's denormalized
// counter together. Like and unlike are distinct operations: repeating one
// without the other in between is an error, not a no-op.
type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

func (s *LikeService) LikePost(userID, postID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id").Where("id = ?", postID).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		var existing models.Like
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		if err == nil {
			return ErrAlreadyLiked
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := models.Like{UserID: userID, PostID: postID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			Update("likes_count", gorm.Expr("likes_count + 1")).Error
	})
}

func (s *LikeService) UnlikePost(userID, postID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotLiked
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			Update("likes_count", gorm.Expr("likes_count - 1")).Error
	})
}

// IsLiked reports whether the presence record exists (feed decoration).
func (s *LikeService) IsLiked(userID, postID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}
