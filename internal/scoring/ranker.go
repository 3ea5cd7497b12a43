package scoring

import (
	"sort"

	"github.com/scorecard-system/backend/internal/models"
)

// StudentScore pairs a student with a computed net score.
type StudentScore struct {
	Student models.Student `json:"student"`
	Score   float64        `json:"score"`
}

// ClassScore pairs a class with a computed net score.
type ClassScore struct {
	Class models.Class `json:"class"`
	Score float64      `json:"score"`
}

// RankStudents computes each student's net score for the year and sorts
// descending. Ties keep the original ordering of the input slice; no
// secondary sort key is applied. An empty input yields an empty ranking.
func RankStudents(students []models.Student, year string) []StudentScore {
	ranked := make([]StudentScore, len(students))
	for i, student := range students {
		ranked[i] = StudentScore{Student: student, Score: NetScoreForStudent(student, year)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// RankClasses computes each class's net score for the year and sorts
// descending, preserving input order on ties. Index 0 is the best performer.
func RankClasses(classes []models.Class, year string) []ClassScore {
	ranked := make([]ClassScore, len(classes))
	for i, class := range classes {
		ranked[i] = ClassScore{Class: class, Score: NetScoreForClass(class, year)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
