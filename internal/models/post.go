package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a social feed entry. ReportsCount and IsHidden are only mutated
// inside report/moderation transactions; LikesCount only inside like
// transactions.
type Post struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	Caption       string    `gorm:"type:text;not null" json:"caption"`
	ImageURL      string    `gorm:"type:text" json:"imageUrl,omitempty"`
	LikesCount    int       `gorm:"default:0" json:"likesCount"`
	CommentsCount int       `gorm:"default:0" json:"commentsCount"`
	ReportsCount  int       `gorm:"default:0" json:"reportsCount"`
	IsHidden      bool      `gorm:"default:false;index" json:"isHidden"`
	Status        string    `gorm:"size:20;default:'approved'" json:"status"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
