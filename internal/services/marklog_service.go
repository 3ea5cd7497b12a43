package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/models"
	"gorm.io/gorm"
)

// MarkLogService maintains the audit trail of scoring actions. Entries are
// keyed by (user, academic year, title); the ledger inside students and
// classes stays authoritative, the log is only a history projection.
type MarkLogService struct {
	db *gorm.DB
}

func NewMarkLogService(db *gorm.DB) *MarkLogService {
	return &MarkLogService{db: db}
}

// RecordNew appends a log entry for a fresh mark. A colliding title for the
// same user and year gets relabeled "<title> (Updated)" instead of replacing
// the earlier entry.
func (s *MarkLogService) RecordNew(userID, markID uuid.UUID, year, title string, score float64, scoreType string) error {
	var existing models.MarkLog
	err := s.db.Where("user_id = ? AND academic_year = ? AND title = ?", userID, year, title).
		First(&existing).Error
	if err == nil {
		title = title + " (Updated)"
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	entry := &models.MarkLog{
		UserID:       userID,
		MarkID:       markID,
		AcademicYear: year,
		Title:        title,
		Score:        score,
		Date:         time.Now(),
		ScoreType:    scoreType,
	}
	return s.db.Create(entry).Error
}

// RecordUpdate replaces the entry for (user, year, title) in place, creating
// it if the mark was never logged.
func (s *MarkLogService) RecordUpdate(userID, markID uuid.UUID, year, title string, score float64, scoreType string) error {
	var existing models.MarkLog
	err := s.db.Where("user_id = ? AND academic_year = ? AND title = ?", userID, year, title).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry := &models.MarkLog{
			UserID:       userID,
			MarkID:       markID,
			AcademicYear: year,
			Title:        title,
			Score:        score,
			Date:         time.Now(),
			ScoreType:    scoreType,
		}
		return s.db.Create(entry).Error
	}
	if err != nil {
		return err
	}

	existing.MarkID = markID
	existing.Score = score
	existing.Date = time.Now()
	existing.ScoreType = scoreType
	return s.db.Save(&existing).Error
}

// ListForUser returns the log entries for one owning entity, optionally
// filtered by academic year, newest first.
func (s *MarkLogService) ListForUser(userID uuid.UUID, year string) ([]models.MarkLog, error) {
	var logs []models.MarkLog
	query := s.db.Where("user_id = ?", userID).Order("date DESC")
	if year != "" {
		query = query.Where("academic_year = ?", year)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
