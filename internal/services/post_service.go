package services

import (
	"errors"
	"strings"
	"time"

	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidPost = errors.New("invalid post")

const feedPageLimit = 10

// PostService owns post creation and the feed query. Hidden content never
// leaves this layer: the feed filters on the stored is_hidden flag rather
// than recomputing visibility from counters.
type PostService struct {
	db     *gorm.DB
	blocks *BlockService
}

func NewPostService(db *gorm.DB, blocks *BlockService) *PostService {
	return &PostService{db: db, blocks: blocks}
}

func (s *PostService) CreatePost(ownerID uuid.UUID, caption, imageURL string) (*models.Post, error) {
	if strings.TrimSpace(caption) == "" {
		return nil, ErrInvalidPost
	}

	post := &models.Post{
		OwnerID:  ownerID,
		Caption:  caption,
		ImageURL: imageURL,
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// GetFeed returns visible posts, newest first, excluding owners the viewer
// has blocked. The cursor is the millisecond timestamp of the last item of
// the previous page; limit is capped at 10.
func (s *PostService) GetFeed(viewerID uuid.UUID, limit int, cursor *int64) ([]models.Post, *int64, error) {
	if limit <= 0 || limit > feedPageLimit {
		limit = feedPageLimit
	}

	blockedIDs, err := s.blocks.BlockedIDs(viewerID)
	if err != nil {
		return nil, nil, err
	}

	query := s.db.Where("is_hidden = ?", false)
	if len(blockedIDs) > 0 {
		query = query.Where("owner_id NOT IN ?", blockedIDs)
	}
	if cursor != nil {
		query = query.Where("created_at < ?", time.UnixMilli(*cursor))
	}

	var posts []models.Post
	if err := query.Order("created_at DESC").Limit(limit).Find(&posts).Error; err != nil {
		return nil, nil, err
	}

	if len(posts) == 0 {
		return posts, nil, nil
	}
	next := posts[len(posts)-1].CreatedAt.UnixMilli()
	return posts, &next, nil
}
