package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/animalfamily/animal-family-backend/internal/config"
	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidStatus  = errors.New("invalid status")
)

// AdminService is the privileged moderation surface. Callers are already
// authorized (AdminRequired middleware); every mutation here is direct and
// exempt from the rate limits and duplicate checks that bind report intake.
type AdminService struct {
	db       *gorm.DB
	cfg      *config.Config
	messages *MessageService
}

func NewAdminService(db *gorm.DB, cfg *config.Config, messages *MessageService) *AdminService {
	return &AdminService{db: db, cfg: cfg, messages: messages}
}

// SetContentVisibility writes the visibility flag directly, with no counter
// interaction. This is how a moderator reverses an auto-hide.
func (s *AdminService) SetContentVisibility(targetType models.TargetType, targetID uuid.UUID, hidden bool) error {
	result := s.db.Table(targetType.Table()).
		Where("id = ?", targetID).
		Update("is_hidden", hidden)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTargetNotFound
	}
	return nil
}

// BanUser sets the blocked flag. Blocking stamps a blocked-until expiry;
// unblocking clears it.
func (s *AdminService) BanUser(userID uuid.UUID, blocked bool) error {
	updates := map[string]interface{}{
		"is_blocked":    blocked,
		"blocked_until": nil,
	}
	if blocked {
		updates["blocked_until"] = time.Now().Add(s.cfg.BanDuration)
	}

	result := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ApproveAdoption couples approval and visibility: approved listings become
// visible and available, rejected ones are hidden.
func (s *AdminService) ApproveAdoption(adoptionID uuid.UUID, approved bool) error {
	updates := map[string]interface{}{
		"is_approved": approved,
		"is_hidden":   !approved,
	}
	if approved {
		updates["status"] = "available"
		updates["approved_at"] = time.Now()
	} else {
		updates["status"] = "rejected"
		updates["approved_at"] = nil
	}

	result := s.db.Model(&models.Adoption{}).Where("id = ?", adoptionID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTargetNotFound
	}
	return nil
}

// DeleteContent removes the content row, every report referencing it, and
// notifies the owner, all in one transaction so a failure leaves no
// half-cleaned state.
func (s *AdminService) DeleteContent(targetType models.TargetType, targetID, ownerID uuid.UUID, reason string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Exec("DELETE FROM "+targetType.Table()+" WHERE id = ?", targetID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTargetNotFound
		}

		if err := tx.
			Where("target_type = ? AND target_id = ?", targetType, targetID).
			Delete(&models.Report{}).Error; err != nil {
			return err
		}

		msg := fmt.Sprintf("Your post was removed due to violation: %s", reason)
		return s.messages.sendTx(tx, ownerID, msg, &targetID)
	})
}

// IgnoreReport dismisses a single report.
func (s *AdminService) IgnoreReport(reportID uuid.UUID) error {
	result := s.db.Where("id = ?", reportID).Delete(&models.Report{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

// IgnoreContentReports dismisses every report against a target and resets
// its counter. Already-hidden content stays hidden; un-hiding takes an
// explicit SetContentVisibility call.
func (s *AdminService) IgnoreContentReports(targetType models.TargetType, targetID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("target_type = ? AND target_id = ?", targetType, targetID).
			Delete(&models.Report{}).Error; err != nil {
			return err
		}

		result := tx.Table(targetType.Table()).
			Where("id = ?", targetID).
			Update("reports_count", 0)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTargetNotFound
		}
		return nil
	})
}

// UpdateStatus resolves a moderation-queue item and notifies the owner.
// Approved adoptions become "available", the status the listing
// feed filters on.
func (s *AdminService) UpdateStatus(targetType models.TargetType, targetID, ownerID uuid.UUID, status, reason string) error {
	if status != "approved" && status != "rejected" {
		return ErrInvalidStatus
	}

	stored := status
	if targetType == models.TargetAdoption && status == "approved" {
		stored = "available"
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": stored}
		if targetType == models.TargetAdoption {
			if status == "approved" {
				updates["approved_at"] = time.Now()
				updates["is_approved"] = true
			} else {
				updates["approved_at"] = nil
				updates["is_approved"] = false
			}
		}

		result := tx.Table(targetType.Table()).Where("id = ?", targetID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTargetNotFound
		}

		var msg string
		if status == "rejected" {
			if reason == "" {
				reason = "Violation of guidelines"
			}
			msg = fmt.Sprintf("Your submission was rejected: %s", reason)
		} else {
			msg = "Congratulations! Your submission has been approved."
		}
		return s.messages.sendTx(tx, ownerID, msg, &targetID)
	})
}
