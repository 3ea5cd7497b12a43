package services

import (
	"log"

	"github.com/scorecard-system/backend/internal/ledger"
	"github.com/scorecard-system/backend/internal/metrics"
	"github.com/scorecard-system/backend/internal/models"
	"gorm.io/gorm"
)

// DedupService runs the CCE maintenance pass: merging duplicate
// (academicYear, className) groups per student. Failures are logged per
// student and never abort the batch.
type DedupService struct {
	db *gorm.DB
}

func NewDedupService(db *gorm.DB) *DedupService {
	return &DedupService{db: db}
}

// DedupReport summarizes one maintenance run.
type DedupReport struct {
	StudentsScanned int `json:"students_scanned"`
	StudentsUpdated int `json:"students_updated"`
	Failures        int `json:"failures"`
}

// Run deduplicates CCE marks for every non-deleted student. The pass is
// idempotent: a second run over clean data changes nothing.
func (s *DedupService) Run() (*DedupReport, error) {
	var students []models.Student
	if err := s.db.Order("created_at").Find(&students).Error; err != nil {
		return nil, err
	}

	report := &DedupReport{}
	for i := range students {
		report.StudentsScanned++

		deduped, changed := ledger.DedupCceMarks(students[i].CceMarks)
		if !changed {
			continue
		}

		if err := s.db.Model(&students[i]).Update("cce_marks", deduped).Error; err != nil {
			report.Failures++
			log.Printf("cce dedup: student %s: %v", students[i].ID, err)
			continue
		}
		report.StudentsUpdated++
		metrics.DedupMerges.Inc()
	}

	log.Printf("cce dedup: scanned %d, updated %d, failures %d",
		report.StudentsScanned, report.StudentsUpdated, report.Failures)
	return report, nil
}
