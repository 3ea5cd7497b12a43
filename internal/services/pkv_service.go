package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/apperr"
	"github.com/scorecard-system/backend/internal/ledger"
	"github.com/scorecard-system/backend/internal/metrics"
	"github.com/scorecard-system/backend/internal/models"
	"gorm.io/gorm"
)

// PKVService manages per-student supplementary phase marks. Writes require
// the target semester to exist and be unlocked.
type PKVService struct {
	db *gorm.DB
}

func NewPKVService(db *gorm.DB) *PKVService {
	return &PKVService{db: db}
}

func (s *PKVService) checkSemesterUnlocked(name string) error {
	var semester models.Semester
	if err := s.db.First(&semester, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("semester %q not found", name)
		}
		return err
	}
	if semester.Locked {
		return apperr.Conflict("semester %q is locked", name)
	}
	return nil
}

func (s *PKVService) checkStudentExists(studentID uuid.UUID) error {
	var student models.Student
	if err := s.db.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("student %s not found", studentID)
		}
		return err
	}
	return nil
}

// ensureRecord finds the student's record, creating it on first write.
func (s *PKVService) ensureRecord(studentID uuid.UUID) (*models.PKVRecord, error) {
	if err := s.checkStudentExists(studentID); err != nil {
		return nil, err
	}

	var record models.PKVRecord
	err := s.db.First(&record, "student_id = ?", studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.PKVRecord{StudentID: studentID}
		if err := s.db.Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Add records a new phase mark. The (year, semester, phase) key must not
// exist yet and the semester must be unlocked.
func (s *PKVService) Add(studentID uuid.UUID, year, semester, phase string, mark float64) (*models.PKVRecord, error) {
	if err := s.checkSemesterUnlocked(semester); err != nil {
		return nil, err
	}

	record, err := s.ensureRecord(studentID)
	if err != nil {
		return nil, err
	}

	record.Entries, err = ledger.AddPKVMark(record.Entries, year, semester, phase, mark, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(record).Update("entries", record.Entries).Error; err != nil {
		return nil, fmt.Errorf("saving PKV entries: %w", err)
	}
	metrics.MarkWrites.WithLabelValues("PKV").Inc()
	return record, nil
}

// Update overwrites an existing phase mark; the mark must have been added
// first and the semester must be unlocked.
func (s *PKVService) Update(studentID uuid.UUID, year, semester, phase string, mark float64) (*models.PKVRecord, error) {
	if err := s.checkSemesterUnlocked(semester); err != nil {
		return nil, err
	}

	record, err := s.ensureRecord(studentID)
	if err != nil {
		return nil, err
	}

	record.Entries, err = ledger.UpdatePKVMark(record.Entries, year, semester, phase, mark, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(record).Update("entries", record.Entries).Error; err != nil {
		return nil, fmt.Errorf("saving PKV entries: %w", err)
	}
	metrics.MarkWrites.WithLabelValues("PKV").Inc()
	return record, nil
}

// Get returns a student's PKV record; a student with no marks yet yields an
// empty record rather than an error. Reads never create the record row.
func (s *PKVService) Get(studentID uuid.UUID) (*models.PKVRecord, error) {
	if err := s.checkStudentExists(studentID); err != nil {
		return nil, err
	}

	var record models.PKVRecord
	err := s.db.First(&record, "student_id = ?", studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.PKVRecord{StudentID: studentID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *PKVService) CreateSemester(name string) (*models.Semester, error) {
	var existing models.Semester
	err := s.db.First(&existing, "name = ?", name).Error
	if err == nil {
		return nil, apperr.Conflict("semester %q already exists", name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	semester := models.Semester{Name: name}
	if err := s.db.Create(&semester).Error; err != nil {
		return nil, err
	}
	return &semester, nil
}

func (s *PKVService) SetSemesterLock(name string, locked bool) (*models.Semester, error) {
	var semester models.Semester
	if err := s.db.First(&semester, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("semester %q not found", name)
		}
		return nil, err
	}

	semester.Locked = locked
	if err := s.db.Model(&semester).Update("locked", locked).Error; err != nil {
		return nil, err
	}
	return &semester, nil
}

func (s *PKVService) ListSemesters() ([]models.Semester, error) {
	var semesters []models.Semester
	if err := s.db.Order("name").Find(&semesters).Error; err != nil {
		return nil, err
	}
	return semesters, nil
}
