package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account record. Role is the single source of truth for
// moderator authorization; IsBlocked/BlockedUntil are written by admin bans.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password     string         `gorm:"not null" json:"-"`
	DisplayName  string         `gorm:"size:100" json:"displayName"`
	Role         string         `gorm:"size:20;default:'user'" json:"role"`
	IsBlocked    bool           `gorm:"default:false" json:"isBlocked"`
	BlockedUntil *time.Time     `json:"blockedUntil,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
