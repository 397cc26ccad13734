package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Adoption is a pet adoption listing. Listings start in status "pending" and
// become "available" when a moderator approves them.
type Adoption struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"ownerId"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Species      string     `gorm:"size:50" json:"species"`
	Description  string     `gorm:"type:text" json:"description"`
	City         string     `gorm:"size:100" json:"city"`
	IsApproved   bool       `gorm:"default:false" json:"isApproved"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`
	ReportsCount int        `gorm:"default:0" json:"reportsCount"`
	IsHidden     bool       `gorm:"default:false;index" json:"isHidden"`
	Status       string     `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt    time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (a *Adoption) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
