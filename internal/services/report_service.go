package services

import (
	"errors"
	"strings"
	"time"

	"github.com/animalfamily/animal-family-backend/internal/config"
	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRateLimited     = errors.New("daily report limit reached")
	ErrAlreadyReported = errors.New("already reported")
	ErrTargetNotFound  = errors.New("target not found")
	ErrInvalidReport   = errors.New("invalid report")
)

// ReportService records user reports and applies the auto-hide policy: the
// report insert, the counter increment and the threshold check run in one
// transaction so the counter can never drift from the stored reports.
type ReportService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewReportService(db *gorm.DB, cfg *config.Config) *ReportService {
	return &ReportService{db: db, cfg: cfg}
}

// targetRow is the slice of a content row the moderation core cares about.
// All five content tables share these columns.
type targetRow struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	ReportsCount int
	IsHidden     bool
}

// SubmitReport validates and records a report against (targetType, targetID).
//
// The daily-limit and duplicate checks are advisory reads outside the
// transaction; two racing submissions from the same reporter can both pass
// them. That window is accepted; the transaction only guarantees the
// counter/visibility update is atomic with the report insert.
func (s *ReportService) SubmitReport(reporterID uuid.UUID, targetType models.TargetType, targetID uuid.UUID, reason string) error {
	if reporterID == uuid.Nil || targetID == uuid.Nil || strings.TrimSpace(reason) == "" {
		return ErrInvalidReport
	}

	// 1) Daily limit, midnight-aligned.
	var todayCount int64
	if err := s.db.Model(&models.Report{}).
		Where("reporter_id = ? AND created_at >= ?", reporterID, startOfToday()).
		Count(&todayCount).Error; err != nil {
		return err
	}
	if todayCount >= int64(s.cfg.DailyReportLimit) {
		return ErrRateLimited
	}

	// 2) Duplicate suppression.
	var dup models.Report
	err := s.db.
		Where("reporter_id = ? AND target_type = ? AND target_id = ?", reporterID, targetType, targetID).
		First(&dup).Error
	if err == nil {
		return ErrAlreadyReported
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// 3) Report insert + counter increment + auto-hide, atomically.
	return s.db.Transaction(func(tx *gorm.DB) error {
		var target targetRow
		if err := tx.Table(targetType.Table()).
			Select("id, owner_id, reports_count, is_hidden").
			Where("id = ?", targetID).
			Take(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTargetNotFound
			}
			return err
		}

		report := models.Report{
			ReporterID: reporterID,
			TargetType: targetType,
			TargetID:   targetID,
			Reason:     reason,
		}
		if err := tx.Create(&report).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"reports_count": gorm.Expr("reports_count + 1"),
		}
		if target.ReportsCount+1 >= s.cfg.ReportThreshold {
			// One-way: only a moderator ever sets is_hidden back to false.
			updates["is_hidden"] = true
		}
		return tx.Table(targetType.Table()).
			Where("id = ?", targetID).
			Updates(updates).Error
	})
}

// ListReports returns the newest reports for the admin queue.
func (s *ReportService) ListReports(limit int) ([]models.Report, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	var reports []models.Report
	err := s.db.Order("created_at DESC").Limit(limit).Find(&reports).Error
	return reports, err
}

// startOfToday is the local-midnight boundary the daily limit counts from.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
