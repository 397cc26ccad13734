package services

import (
	"errors"

	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSelfBlock      = errors.New("cannot block yourself")
	ErrAlreadyBlocked = errors.New("user already blocked")
)

// BlockService handles user-level blocks (distinct from moderator bans).
type BlockService struct {
	db *gorm.DB
}

func NewBlockService(db *gorm.DB) *BlockService {
	return &BlockService{db: db}
}

func (s *BlockService) BlockUser(blockerID, blockedUID uuid.UUID) error {
	if blockerID == blockedUID {
		return ErrSelfBlock
	}

	var existing models.Block
	err := s.db.Where("blocker_id = ? AND blocked_uid = ?", blockerID, blockedUID).First(&existing).Error
	if err == nil {
		return ErrAlreadyBlocked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	block := models.Block{BlockerID: blockerID, BlockedUID: blockedUID}
	return s.db.Create(&block).Error
}

func (s *BlockService) UnblockUser(blockerID, blockedUID uuid.UUID) error {
	return s.db.
		Where("blocker_id = ? AND blocked_uid = ?", blockerID, blockedUID).
		Delete(&models.Block{}).Error
}

// BlockedIDs lists every user the blocker has blocked, for feed filtering.
func (s *BlockService) BlockedIDs(blockerID uuid.UUID) ([]uuid.UUID, error) {
	var blocks []models.Block
	if err := s.db.Where("blocker_id = ?", blockerID).Find(&blocks).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(blocks))
	for i, b := range blocks {
		ids[i] = b.BlockedUID
	}
	return ids, nil
}
