package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like is a presence record: the row existing means the user likes the post.
// Post.LikesCount must always equal the number of Like rows for that post;
// both are only ever written together inside one transaction.
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post" json:"userId"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
