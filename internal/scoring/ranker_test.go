package scoring

import (
	"testing"

	"github.com/scorecard-system/backend/internal/models"
)

func studentWithMentorMark(name, year string, mark float64) models.Student {
	return models.Student{
		FirstName:   name,
		MentorMarks: models.MentorMarkList{{AcademicYear: year, Mark: mark}},
	}
}

func TestRankStudents(t *testing.T) {
	year := "2024-2025"
	students := []models.Student{
		studentWithMentorMark("A", year, 50),
		studentWithMentorMark("B", year, 80),
		studentWithMentorMark("C", year, 80),
	}

	ranked := RankStudents(students, year)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ranked))
	}

	order := []struct {
		name  string
		score float64
	}{{"B", 80}, {"C", 80}, {"A", 50}}

	for i, want := range order {
		if ranked[i].Student.FirstName != want.name || ranked[i].Score != want.score {
			t.Errorf("position %d: got %s(%v), want %s(%v)",
				i, ranked[i].Student.FirstName, ranked[i].Score, want.name, want.score)
		}
	}
}

func TestRankStudents_Empty(t *testing.T) {
	ranked := RankStudents(nil, "2024-2025")
	if len(ranked) != 0 {
		t.Errorf("expected empty ranking, got %d entries", len(ranked))
	}
}

func TestRankClasses(t *testing.T) {
	year := "2024-2025"
	classes := []models.Class{
		{Name: "7A", Credits: models.MarkItemList{markItem(year, 10)}, Penalties: models.MarkItemList{markItem(year, 3)}},
		{Name: "7B", Credits: models.MarkItemList{markItem(year, 25)}},
		{Name: "7C"},
	}

	ranked := RankClasses(classes, year)
	if ranked[0].Class.Name != "7B" || ranked[0].Score != 25 {
		t.Errorf("best class: got %s(%v), want 7B(25)", ranked[0].Class.Name, ranked[0].Score)
	}
	if ranked[1].Class.Name != "7A" || ranked[1].Score != 7 {
		t.Errorf("second class: got %s(%v), want 7A(7)", ranked[1].Class.Name, ranked[1].Score)
	}
	if ranked[2].Class.Name != "7C" || ranked[2].Score != 0 {
		t.Errorf("last class: got %s(%v), want 7C(0)", ranked[2].Class.Name, ranked[2].Score)
	}
}

func TestRankClasses_TiesKeepInputOrder(t *testing.T) {
	year := "2024-2025"
	classes := []models.Class{
		{Name: "First", Credits: models.MarkItemList{markItem(year, 5)}},
		{Name: "Second", Credits: models.MarkItemList{markItem(year, 5)}},
	}

	ranked := RankClasses(classes, year)
	if ranked[0].Class.Name != "First" || ranked[1].Class.Name != "Second" {
		t.Errorf("tie order changed: got %s, %s", ranked[0].Class.Name, ranked[1].Class.Name)
	}
}
