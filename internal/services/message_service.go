package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageService delivers moderation notices to users.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// Send creates an admin message for userID, optionally referencing the
// content the notice is about.
func (s *MessageService) Send(userID uuid.UUID, message string, relatedID *uuid.UUID) error {
	msg := models.AdminMessage{
		UserID:    userID,
		Message:   message,
		RelatedID: relatedID,
	}
	return s.db.Create(&msg).Error
}

// sendTx is Send inside an existing transaction.
func (s *MessageService) sendTx(tx *gorm.DB, userID uuid.UUID, message string, relatedID *uuid.UUID) error {
	msg := models.AdminMessage{
		UserID:    userID,
		Message:   message,
		RelatedID: relatedID,
	}
	return tx.Create(&msg).Error
}

// ListForUser returns the recipient's messages, newest first.
func (s *MessageService) ListForUser(userID uuid.UUID) ([]models.AdminMessage, error) {
	var messages []models.AdminMessage
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// MarkRead flips the read flag. Only the recipient may do so.
func (s *MessageService) MarkRead(userID, messageID uuid.UUID) error {
	result := s.db.Model(&models.AdminMessage{}).
		Where("id = ? AND user_id = ?", messageID, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// DeleteOlderThan removes messages past the retention window and returns how
// many were deleted.
func (s *MessageService) DeleteOlderThan(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.AdminMessage{})
	return result.RowsAffected, result.Error
}

// StartRetentionSweep runs a daily goroutine deleting expired admin messages.
func (s *MessageService) StartRetentionSweep(retention time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := s.DeleteOlderThan(retention)
				if err != nil {
					slog.Error("admin message cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("admin message cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
