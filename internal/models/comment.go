package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a reply on a post.
type Comment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	PostID       uuid.UUID `gorm:"type:uuid;not null;index" json:"postId"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	ReportsCount int       `gorm:"default:0" json:"reportsCount"`
	IsHidden     bool      `gorm:"default:false" json:"isHidden"`
	Status       string    `gorm:"size:20;default:'approved'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
