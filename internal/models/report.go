package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is a user's complaint about one piece of content.
//
// There is deliberately no unique index on (reporter, target): duplicate
// suppression is a best-effort pre-check in the report service, and two
// racing submissions may both land. Moderators ignore the extra row.
type Report struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID uuid.UUID  `gorm:"type:uuid;not null;index" json:"reporterId"`
	TargetType TargetType `gorm:"size:20;not null;index:idx_reports_target" json:"targetType"`
	TargetID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_reports_target" json:"targetId"`
	Reason     string     `gorm:"size:500;not null" json:"reason"`
	CreatedAt  time.Time  `gorm:"index" json:"createdAt"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
