// Package scoring implements the pure score computations: net-score
// aggregation, theme band classification, and ranking. Nothing in this
// package touches storage or mutates its inputs.
package scoring

import (
	"github.com/scorecard-system/backend/internal/models"
)

// NetScoreForClass sums the class's credits and subtracts its penalties for
// one academic year.
func NetScoreForClass(class models.Class, year string) float64 {
	total := 0.0
	for _, credit := range class.Credits {
		if credit.AcademicYear == year {
			total += credit.Score
		}
	}
	for _, penalty := range class.Penalties {
		if penalty.AcademicYear == year {
			total -= penalty.Score
		}
	}
	return total
}

// NetScoreForStudent combines the student's mark categories for one academic
// year: the mentor mark, all extra marks, and every subject mark inside CCE
// groups for that year. Categories with no entries contribute zero.
func NetScoreForStudent(student models.Student, year string) float64 {
	total := 0.0
	for _, mentor := range student.MentorMarks {
		if mentor.AcademicYear == year {
			total += mentor.Mark
		}
	}
	for _, extra := range student.ExtraMarks {
		if extra.AcademicYear == year {
			total += extra.Mark
		}
	}
	for _, cce := range student.CceMarks {
		if cce.AcademicYear != year {
			continue
		}
		for _, subject := range cce.Subjects {
			total += subject.Mark
		}
	}
	return total
}
