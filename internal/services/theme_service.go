package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/apperr"
	"github.com/scorecard-system/backend/internal/models"
	"github.com/scorecard-system/backend/internal/scoring"
	"gorm.io/gorm"
)

// ThemeService manages score bands. Every insert and update re-checks the
// range-exclusivity invariant against all other non-deleted themes.
type ThemeService struct {
	db *gorm.DB
}

func NewThemeService(db *gorm.DB) *ThemeService {
	return &ThemeService{db: db}
}

// Upsert creates a theme, or updates the one identified by id when given.
func (s *ThemeService) Upsert(id *uuid.UUID, label string, minMark, maxMark float64) (*models.Theme, error) {
	if minMark < 0 || maxMark < 0 {
		return nil, apperr.Validation("marks must not be negative")
	}
	if minMark >= maxMark {
		return nil, apperr.Validation("minMark %v must be below maxMark %v", minMark, maxMark)
	}

	var themes []models.Theme
	if err := s.db.Order("min_mark").Find(&themes).Error; err != nil {
		return nil, err
	}

	excludeID := uuid.Nil
	if id != nil {
		excludeID = *id
	}
	if clash := scoring.FindOverlap(themes, minMark, maxMark, excludeID); clash != nil {
		return nil, apperr.Validation("range %v-%v overlaps theme %q (%v-%v)",
			minMark, maxMark, clash.Label, clash.MinMark, clash.MaxMark)
	}

	if id == nil {
		theme := models.Theme{Label: label, MinMark: minMark, MaxMark: maxMark}
		if err := s.db.Create(&theme).Error; err != nil {
			return nil, err
		}
		return &theme, nil
	}

	var theme models.Theme
	if err := s.db.First(&theme, "id = ?", *id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("theme %s not found", *id)
		}
		return nil, err
	}
	theme.Label = label
	theme.MinMark = minMark
	theme.MaxMark = maxMark
	if err := s.db.Save(&theme).Error; err != nil {
		return nil, err
	}
	return &theme, nil
}

func (s *ThemeService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Theme{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("theme %s not found", id)
	}
	return nil
}

func (s *ThemeService) List() ([]models.Theme, error) {
	var themes []models.Theme
	if err := s.db.Order("min_mark").Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

// Classify maps a score to its theme label, "Unknown" when no band matches.
func (s *ThemeService) Classify(score float64) (string, error) {
	themes, err := s.List()
	if err != nil {
		return "", err
	}
	return scoring.Classify(themes, score), nil
}
