package scoring

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/models"
)

func markItem(year string, score float64) models.MarkItem {
	return models.MarkItem{
		MarkID:       uuid.New(),
		AcademicYear: year,
		Item:         "item",
		Score:        score,
		Date:         time.Now(),
	}
}

func TestNetScoreForClass(t *testing.T) {
	tests := []struct {
		name      string
		credits   models.MarkItemList
		penalties models.MarkItemList
		year      string
		expected  float64
	}{
		{
			"Credits Minus Penalties",
			models.MarkItemList{markItem("2024-2025", 10)},
			models.MarkItemList{markItem("2024-2025", 3)},
			"2024-2025",
			7,
		},
		{
			"Other Years Ignored",
			models.MarkItemList{markItem("2024-2025", 10), markItem("2023-2024", 50)},
			models.MarkItemList{markItem("2025-2026", 5)},
			"2024-2025",
			10,
		},
		{"No Entries", nil, nil, "2024-2025", 0},
		{
			"Net Negative",
			models.MarkItemList{markItem("2024-2025", 2)},
			models.MarkItemList{markItem("2024-2025", 9)},
			"2024-2025",
			-7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := models.Class{Name: "7A", Credits: tt.credits, Penalties: tt.penalties}
			if got := NetScoreForClass(class, tt.year); got != tt.expected {
				t.Errorf("NetScoreForClass = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNetScoreForClass_CreditPenaltyCancel(t *testing.T) {
	class := models.Class{
		Name:    "7A",
		Credits: models.MarkItemList{markItem("2024-2025", 10)},
	}
	before := NetScoreForClass(class, "2024-2025")

	class.Credits = append(class.Credits, markItem("2024-2025", 4))
	class.Penalties = append(class.Penalties, markItem("2024-2025", 4))

	if got := NetScoreForClass(class, "2024-2025"); got != before {
		t.Errorf("credit and penalty of equal score changed net from %v to %v", before, got)
	}
}

func TestNetScoreForStudent(t *testing.T) {
	student := models.Student{
		MentorMarks: models.MentorMarkList{
			{AcademicYear: "2024-2025", Mark: 20},
			{AcademicYear: "2023-2024", Mark: 99},
		},
		ExtraMarks: models.ExtraMarkList{
			{MarkID: uuid.New(), AcademicYear: "2024-2025", ProgramName: "Quiz", Mark: 15},
			{MarkID: uuid.New(), AcademicYear: "2024-2025", ProgramName: "Quiz", Mark: 15},
		},
		CceMarks: models.CceMarkList{
			{
				AcademicYear: "2024-2025",
				ClassName:    "7A",
				Subjects: []models.CceSubjectMark{
					{SubjectName: "Maths", Phase: "Phase 1", Mark: 40},
					{SubjectName: "Maths", Phase: "Phase 2", Mark: 30},
				},
			},
			{
				AcademicYear: "2023-2024",
				ClassName:    "6A",
				Subjects:     []models.CceSubjectMark{{SubjectName: "Maths", Phase: "Phase 1", Mark: 100}},
			},
		},
	}

	if got := NetScoreForStudent(student, "2024-2025"); got != 120 {
		t.Errorf("NetScoreForStudent = %v, want 120", got)
	}
}

func TestNetScoreForStudent_NoMarksForYear(t *testing.T) {
	student := models.Student{FirstName: "Empty"}
	if got := NetScoreForStudent(student, "2025-2026"); got != 0 {
		t.Errorf("expected 0 for student with no marks, got %v", got)
	}
}

func TestNetScore_Pure(t *testing.T) {
	student := models.Student{
		MentorMarks: models.MentorMarkList{{AcademicYear: "2024-2025", Mark: 12}},
		ExtraMarks:  models.ExtraMarkList{{MarkID: uuid.New(), AcademicYear: "2024-2025", Mark: 8}},
	}

	first := NetScoreForStudent(student, "2024-2025")
	second := NetScoreForStudent(student, "2024-2025")
	if first != second {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
	if len(student.MentorMarks) != 1 || len(student.ExtraMarks) != 1 {
		t.Error("aggregation mutated the student's mark collections")
	}
}
