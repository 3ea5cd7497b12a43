package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/academic"
	"github.com/scorecard-system/backend/internal/apperr"
	"github.com/scorecard-system/backend/internal/metrics"
	"github.com/scorecard-system/backend/internal/models"
	"github.com/scorecard-system/backend/internal/scoring"
	"gorm.io/gorm"
)

// LeaderboardService computes rankings on demand. Every call is a snapshot
// over the current ledger state; nothing is cached or maintained
// incrementally. Entities are loaded in admission order so ranking ties keep
// insertion order.
type LeaderboardService struct {
	db     *gorm.DB
	themes *ThemeService
	now    func() time.Time
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db, themes: NewThemeService(db), now: time.Now}
}

func (s *LeaderboardService) currentYear() string {
	return academic.CurrentYear(s.now())
}

// RankStudentsInClass ranks every non-deleted student of the class by net
// score for the year, descending.
func (s *LeaderboardService) RankStudentsInClass(classID uuid.UUID, year string) ([]scoring.StudentScore, error) {
	var class models.Class
	if err := s.db.First(&class, "id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("class %s not found", classID)
		}
		return nil, err
	}

	var students []models.Student
	if err := s.db.Where("class_id = ?", classID).Order("created_at").Find(&students).Error; err != nil {
		return nil, err
	}

	metrics.LeaderboardReads.WithLabelValues("class_students").Inc()
	return scoring.RankStudents(students, year), nil
}

// TopClasses ranks all non-deleted classes by net score for the current
// academic year. An empty list is a valid result.
func (s *LeaderboardService) TopClasses() ([]scoring.ClassScore, error) {
	var classes []models.Class
	if err := s.db.Order("created_at").Find(&classes).Error; err != nil {
		return nil, err
	}

	metrics.LeaderboardReads.WithLabelValues("classes").Inc()
	return scoring.RankClasses(classes, s.currentYear()), nil
}

// BestPerformingClass returns the head of the class ranking, or nil when no
// classes exist.
func (s *LeaderboardService) BestPerformingClass() (*scoring.ClassScore, error) {
	ranked, err := s.TopClasses()
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[0], nil
}

// RankAllStudents ranks every non-deleted student for the current academic
// year; index 0 is the best performer and the last index the worst.
func (s *LeaderboardService) RankAllStudents() ([]scoring.StudentScore, error) {
	var students []models.Student
	if err := s.db.Order("created_at").Find(&students).Error; err != nil {
		return nil, err
	}

	metrics.LeaderboardReads.WithLabelValues("students").Inc()
	return scoring.RankStudents(students, s.currentYear()), nil
}

// DashboardEntry is a ranked entity decorated with its theme label.
type DashboardEntry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Theme string  `json:"theme"`
}

// Dashboard summarizes best/worst student and best class for the current
// academic year. Fields stay nil when the dataset is empty; callers must
// handle the absence.
type Dashboard struct {
	AcademicYear string          `json:"academic_year"`
	BestStudent  *DashboardEntry `json:"best_student,omitempty"`
	WorstStudent *DashboardEntry `json:"worst_student,omitempty"`
	BestClass    *DashboardEntry `json:"best_class,omitempty"`
}

// BuildDashboard assembles the dashboard snapshot. Theme bands are applied
// only here, at render time.
func (s *LeaderboardService) BuildDashboard() (*Dashboard, error) {
	dashboard := &Dashboard{AcademicYear: s.currentYear()}

	students, err := s.RankAllStudents()
	if err != nil {
		return nil, err
	}
	if len(students) > 0 {
		best, err := s.dashboardEntry(
			students[0].Student.FirstName+" "+students[0].Student.LastName, students[0].Score)
		if err != nil {
			return nil, err
		}
		worst, err := s.dashboardEntry(
			students[len(students)-1].Student.FirstName+" "+students[len(students)-1].Student.LastName,
			students[len(students)-1].Score)
		if err != nil {
			return nil, err
		}
		dashboard.BestStudent = best
		dashboard.WorstStudent = worst
	}

	bestClass, err := s.BestPerformingClass()
	if err != nil {
		return nil, err
	}
	if bestClass != nil {
		entry, err := s.dashboardEntry(bestClass.Class.Name, bestClass.Score)
		if err != nil {
			return nil, err
		}
		dashboard.BestClass = entry
	}

	return dashboard, nil
}

func (s *LeaderboardService) dashboardEntry(name string, score float64) (*DashboardEntry, error) {
	theme, err := s.themes.Classify(score)
	if err != nil {
		return nil, err
	}
	return &DashboardEntry{Name: name, Score: score, Theme: theme}, nil
}
