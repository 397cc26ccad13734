package services

import (
	"errors"

	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidComment = errors.New("comment must be 1-500 characters")

// CommentService creates and lists comments on posts. The comment insert and
// the post's comments_count increment share a transaction, same rule as
// likes: the counter never drifts from the rows it summarizes.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) AddComment(ownerID, postID uuid.UUID, text string) (*models.Comment, error) {
	if len(text) < 1 || len(text) > 500 {
		return nil, ErrInvalidComment
	}

	comment := &models.Comment{
		OwnerID: ownerID,
		PostID:  postID,
		Text:    text,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id").Where("id = ?", postID).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			Update("comments_count", gorm.Expr("comments_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListForPost(postID uuid.UUID, limit int) ([]models.Comment, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	var comments []models.Comment
	err := s.db.
		Where("post_id = ? AND is_hidden = ?", postID, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}
