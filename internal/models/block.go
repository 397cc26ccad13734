package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Block hides one user's content from another (user-level, not a moderator
// ban). The feed filters out posts owned by anyone the caller has blocked.
type Block struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BlockerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"blockerId"`
	BlockedUID uuid.UUID `gorm:"type:uuid;not null" json:"blockedUid"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (b *Block) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (Block) TableName() string {
	return "blocks"
}
