package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/apperr"
	"github.com/scorecard-system/backend/internal/models"
	"gorm.io/gorm"
)

// ProgramService manages extracurricular programs. Soft-deleted programs are
// excluded from listings and from extra-mark resolution.
type ProgramService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewProgramService(db *gorm.DB) *ProgramService {
	return &ProgramService{db: db, now: time.Now}
}

func validateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return apperr.Validation("start and end dates are required")
	}
	if !end.After(start) {
		return apperr.Validation("end date must be after start date")
	}
	return nil
}

func (s *ProgramService) Create(name, criteria string, start, end time.Time, eligibleClasses []uuid.UUID) (*models.Program, error) {
	if name == "" {
		return nil, apperr.Validation("program name is required")
	}
	if err := validateWindow(start, end); err != nil {
		return nil, err
	}
	if start.Before(s.now()) {
		return nil, apperr.Validation("start date must not be in the past")
	}

	program := models.Program{
		Name:            name,
		Criteria:        criteria,
		StartDate:       start,
		EndDate:         end,
		EligibleClasses: eligibleClasses,
	}
	if err := s.db.Create(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (s *ProgramService) Update(id uuid.UUID, name, criteria string, start, end time.Time, eligibleClasses []uuid.UUID) (*models.Program, error) {
	var program models.Program
	if err := s.db.First(&program, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("program %s not found", id)
		}
		return nil, err
	}

	if err := validateWindow(start, end); err != nil {
		return nil, err
	}

	program.Name = name
	program.Criteria = criteria
	program.StartDate = start
	program.EndDate = end
	program.EligibleClasses = eligibleClasses
	if err := s.db.Save(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (s *ProgramService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Program{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("program %s not found", id)
	}
	return nil
}

func (s *ProgramService) Get(id uuid.UUID) (*models.Program, error) {
	var program models.Program
	if err := s.db.First(&program, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("program %s not found", id)
		}
		return nil, err
	}
	return &program, nil
}

// List returns non-deleted programs, optionally only those eligible for a
// class.
func (s *ProgramService) List(classID *uuid.UUID) ([]models.Program, error) {
	var programs []models.Program
	if err := s.db.Order("start_date").Find(&programs).Error; err != nil {
		return nil, err
	}
	if classID == nil {
		return programs, nil
	}

	eligible := make([]models.Program, 0, len(programs))
	for _, program := range programs {
		if len(program.EligibleClasses) == 0 {
			eligible = append(eligible, program)
			continue
		}
		for _, id := range program.EligibleClasses {
			if id == *classID {
				eligible = append(eligible, program)
				break
			}
		}
	}
	return eligible, nil
}
