package services

import (
	"errors"
	"strings"

	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidAdoption = errors.New("invalid adoption listing")

// AdoptionService manages adoption listings. New listings wait in status
// "pending" until a moderator approves them.
type AdoptionService struct {
	db *gorm.DB
}

func NewAdoptionService(db *gorm.DB) *AdoptionService {
	return &AdoptionService{db: db}
}

func (s *AdoptionService) CreateListing(ownerID uuid.UUID, title, species, description, city string) (*models.Adoption, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidAdoption
	}

	listing := &models.Adoption{
		OwnerID:     ownerID,
		Title:       title,
		Species:     species,
		Description: description,
		City:        city,
		Status:      "pending",
	}
	if err := s.db.Create(listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

// ListAvailable returns approved, visible listings, newest first.
func (s *AdoptionService) ListAvailable(limit int) ([]models.Adoption, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	var listings []models.Adoption
	err := s.db.
		Where("status = ? AND is_hidden = ?", "available", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&listings).Error
	return listings, err
}
