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

// LedgerService applies single mark-writing operations against a student or
// class record. Each operation validates the target entity first, applies the
// mutation through the ledger package, persists the result, and records the
// corresponding mark-log entry.
type LedgerService struct {
	db      *gorm.DB
	markLog *MarkLogService
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db, markLog: NewMarkLogService(db)}
}

func (s *LedgerService) class(classID uuid.UUID) (*models.Class, error) {
	var class models.Class
	if err := s.db.First(&class, "id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("class %s not found", classID)
		}
		return nil, err
	}
	return &class, nil
}

func (s *LedgerService) student(studentID uuid.UUID) (*models.Student, error) {
	var student models.Student
	if err := s.db.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("student %s not found", studentID)
		}
		return nil, err
	}
	return &student, nil
}

func (s *LedgerService) AddCredit(classID uuid.UUID, year, item string, score float64, description string) (*models.Class, error) {
	return s.addClassMark(classID, year, item, score, description, models.ScoreTypeCredit)
}

func (s *LedgerService) AddPenalty(classID uuid.UUID, year, item string, score float64, description string) (*models.Class, error) {
	return s.addClassMark(classID, year, item, score, description, models.ScoreTypePenalty)
}

func (s *LedgerService) addClassMark(classID uuid.UUID, year, item string, score float64, description, scoreType string) (*models.Class, error) {
	class, err := s.class(classID)
	if err != nil {
		return nil, err
	}

	list := class.Credits
	if scoreType == models.ScoreTypePenalty {
		list = class.Penalties
	}

	list, entry := ledger.AddClassMark(list, year, item, score, description, time.Now())
	column := "credits"
	if scoreType == models.ScoreTypePenalty {
		class.Penalties = list
		column = "penalties"
	} else {
		class.Credits = list
	}

	if err := s.db.Model(class).Update(column, list).Error; err != nil {
		return nil, fmt.Errorf("saving %s: %w", column, err)
	}

	if err := s.markLog.RecordNew(class.ID, entry.MarkID, year, item, score, scoreType); err != nil {
		return nil, err
	}
	metrics.MarkWrites.WithLabelValues(scoreType).Inc()
	return class, nil
}

func (s *LedgerService) EditCredit(classID, markID uuid.UUID, item string, score float64, description string) (*models.Class, error) {
	return s.editClassMark(classID, markID, item, score, description, models.ScoreTypeCredit)
}

func (s *LedgerService) EditPenalty(classID, markID uuid.UUID, item string, score float64, description string) (*models.Class, error) {
	return s.editClassMark(classID, markID, item, score, description, models.ScoreTypePenalty)
}

func (s *LedgerService) editClassMark(classID, markID uuid.UUID, item string, score float64, description, scoreType string) (*models.Class, error) {
	class, err := s.class(classID)
	if err != nil {
		return nil, err
	}

	list := class.Credits
	column := "credits"
	if scoreType == models.ScoreTypePenalty {
		list = class.Penalties
		column = "penalties"
	}

	list, entry, err := ledger.EditClassMark(list, markID, item, score, description, time.Now())
	if err != nil {
		return nil, err
	}
	if scoreType == models.ScoreTypePenalty {
		class.Penalties = list
	} else {
		class.Credits = list
	}

	if err := s.db.Model(class).Update(column, list).Error; err != nil {
		return nil, fmt.Errorf("saving %s: %w", column, err)
	}

	if err := s.markLog.RecordUpdate(class.ID, entry.MarkID, entry.AcademicYear, item, score, scoreType); err != nil {
		return nil, err
	}
	metrics.MarkWrites.WithLabelValues(scoreType).Inc()
	return class, nil
}

func (s *LedgerService) DeleteCredit(classID, markID uuid.UUID) (*models.Class, error) {
	return s.deleteClassMark(classID, markID, models.ScoreTypeCredit)
}

func (s *LedgerService) DeletePenalty(classID, markID uuid.UUID) (*models.Class, error) {
	return s.deleteClassMark(classID, markID, models.ScoreTypePenalty)
}

func (s *LedgerService) deleteClassMark(classID, markID uuid.UUID, scoreType string) (*models.Class, error) {
	class, err := s.class(classID)
	if err != nil {
		return nil, err
	}

	list := class.Credits
	column := "credits"
	if scoreType == models.ScoreTypePenalty {
		list = class.Penalties
		column = "penalties"
	}

	list, err = ledger.DeleteClassMark(list, markID)
	if err != nil {
		return nil, err
	}
	if scoreType == models.ScoreTypePenalty {
		class.Penalties = list
	} else {
		class.Credits = list
	}

	if err := s.db.Model(class).Update(column, list).Error; err != nil {
		return nil, fmt.Errorf("saving %s: %w", column, err)
	}
	return class, nil
}

// AddExtraScore appends an extracurricular mark, resolved against a program
// when a program id is given. Repeat marks are allowed.
func (s *LedgerService) AddExtraScore(studentID uuid.UUID, year string, programID *uuid.UUID, customName string, mark float64) (*models.Student, error) {
	student, err := s.student(studentID)
	if err != nil {
		return nil, err
	}

	name := customName
	if programID != nil {
		var program models.Program
		if err := s.db.First(&program, "id = ?", *programID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("program %s not found", *programID)
			}
			return nil, err
		}
		name = program.Name
	}
	if name == "" {
		return nil, apperr.Validation("a program or custom name is required")
	}

	student.ExtraMarks, _ = ledger.AppendExtraMark(student.ExtraMarks, year, programID, name, mark, time.Now())
	if err := s.db.Model(student).Update("extra_marks", student.ExtraMarks).Error; err != nil {
		return nil, fmt.Errorf("saving extra marks: %w", err)
	}
	metrics.MarkWrites.WithLabelValues("Extra").Inc()
	return student, nil
}

// AddMentorScore upserts the mentor mark for the year; a second write for the
// same year overwrites the first.
func (s *LedgerService) AddMentorScore(studentID uuid.UUID, year string, mark float64) (*models.Student, error) {
	student, err := s.student(studentID)
	if err != nil {
		return nil, err
	}

	var overwritten bool
	student.MentorMarks, overwritten = ledger.UpsertMentorMark(student.MentorMarks, year, mark)
	if err := s.db.Model(student).Update("mentor_marks", student.MentorMarks).Error; err != nil {
		return nil, fmt.Errorf("saving mentor marks: %w", err)
	}

	if overwritten {
		err = s.markLog.RecordUpdate(student.ID, uuid.Nil, year, "Mentor Mark", mark, models.ScoreTypeMentor)
	} else {
		err = s.markLog.RecordNew(student.ID, uuid.Nil, year, "Mentor Mark", mark, models.ScoreTypeMentor)
	}
	if err != nil {
		return nil, err
	}
	metrics.MarkWrites.WithLabelValues(models.ScoreTypeMentor).Inc()
	return student, nil
}

// AddCceScore upserts the (subjectName, phase) mark inside the student's
// (year, className) CCE group, creating the group when absent.
func (s *LedgerService) AddCceScore(studentID uuid.UUID, year, className, subjectName, phase string, mark float64) (*models.Student, error) {
	student, err := s.student(studentID)
	if err != nil {
		return nil, err
	}

	var overwritten bool
	student.CceMarks, overwritten = ledger.UpsertCceMark(student.CceMarks, year, className, subjectName, phase, mark)
	if err := s.db.Model(student).Update("cce_marks", student.CceMarks).Error; err != nil {
		return nil, fmt.Errorf("saving cce marks: %w", err)
	}

	title := fmt.Sprintf("%s %s", subjectName, phase)
	if overwritten {
		err = s.markLog.RecordUpdate(student.ID, uuid.Nil, year, title, mark, models.ScoreTypeCCE)
	} else {
		err = s.markLog.RecordNew(student.ID, uuid.Nil, year, title, mark, models.ScoreTypeCCE)
	}
	if err != nil {
		return nil, err
	}
	metrics.MarkWrites.WithLabelValues(models.ScoreTypeCCE).Inc()
	return student, nil
}

// AddSubject adds a subject to a class with set semantics.
func (s *LedgerService) AddSubject(classID uuid.UUID, name string) (*models.Class, error) {
	class, err := s.class(classID)
	if err != nil {
		return nil, err
	}

	class.Subjects, err = ledger.AddSubject(class.Subjects, name)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(class).Update("subjects", class.Subjects).Error; err != nil {
		return nil, fmt.Errorf("saving subjects: %w", err)
	}
	return class, nil
}

// DeleteSubject removes a subject from a class.
func (s *LedgerService) DeleteSubject(classID uuid.UUID, name string) (*models.Class, error) {
	class, err := s.class(classID)
	if err != nil {
		return nil, err
	}

	class.Subjects, err = ledger.RemoveSubject(class.Subjects, name)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(class).Update("subjects", class.Subjects).Error; err != nil {
		return nil, fmt.Errorf("saving subjects: %w", err)
	}
	return class, nil
}
