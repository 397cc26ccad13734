package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminMessage is a moderation notice delivered to a user (content removed,
// submission approved/rejected). A retention sweep deletes old ones.
type AdminMessage struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	RelatedID *uuid.UUID `gorm:"type:uuid" json:"relatedId,omitempty"`
	Read      bool       `gorm:"default:false" json:"read"`
	CreatedAt time.Time  `gorm:"index" json:"createdAt"`
}

func (m *AdminMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
