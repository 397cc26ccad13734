package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Animal is a pet profile. Sounds hang off an animal.
type Animal struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Species      string    `gorm:"size:50" json:"species"`
	PhotoURL     string    `gorm:"type:text" json:"photoUrl,omitempty"`
	ReportsCount int       `gorm:"default:0" json:"reportsCount"`
	IsHidden     bool      `gorm:"default:false" json:"isHidden"`
	Status       string    `gorm:"size:20;default:'approved'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (a *Animal) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Sound is a recorded pet sound attached to an animal profile.
type Sound struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	AnimalID     uuid.UUID `gorm:"type:uuid;index" json:"animalId"`
	Title        string    `gorm:"size:200" json:"title"`
	AudioURL     string    `gorm:"type:text" json:"audioUrl,omitempty"`
	ReportsCount int       `gorm:"default:0" json:"reportsCount"`
	IsHidden     bool      `gorm:"default:false" json:"isHidden"`
	Status       string    `gorm:"size:20;default:'approved'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s *Sound) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
