package ledger

import (
	"reflect"
	"testing"

	"github.com/scorecard-system/backend/internal/models"
)

func TestDedupCceMarks(t *testing.T) {
	marks := models.CceMarkList{
		{
			AcademicYear: "2024-2025",
			ClassName:    "7A",
			Subjects: []models.CceSubjectMark{
				{SubjectName: "Maths", Phase: "Phase 1", Mark: 40},
				{SubjectName: "Maths", Phase: "Phase 1", Mark: 40}, // exact duplicate
			},
		},
		{
			AcademicYear: "2024-2025",
			ClassName:    "7A", // duplicate group
			Subjects: []models.CceSubjectMark{
				{SubjectName: "Maths", Phase: "Phase 1", Mark: 40}, // duplicate across groups
				{SubjectName: "Science", Phase: "Phase 1", Mark: 30},
			},
		},
		{
			AcademicYear: "2023-2024",
			ClassName:    "7A",
			Subjects:     []models.CceSubjectMark{{SubjectName: "Maths", Phase: "Phase 1", Mark: 20}},
		},
	}

	deduped, changed := DedupCceMarks(marks)
	if !changed {
		t.Fatal("expected duplicates to be reported")
	}
	if len(deduped) != 2 {
		t.Fatalf("expected 2 groups, got %d: %+v", len(deduped), deduped)
	}

	first := deduped[0]
	if first.AcademicYear != "2024-2025" || first.ClassName != "7A" {
		t.Errorf("first-seen group order not preserved: %+v", first)
	}
	want := []models.CceSubjectMark{
		{SubjectName: "Maths", Phase: "Phase 1", Mark: 40},
		{SubjectName: "Science", Phase: "Phase 1", Mark: 30},
	}
	if !reflect.DeepEqual(first.Subjects, want) {
		t.Errorf("merged subjects = %+v, want %+v", first.Subjects, want)
	}
}

func TestDedupCceMarks_SamePhaseDifferentMarkKept(t *testing.T) {
	marks := models.CceMarkList{
		{
			AcademicYear: "2024-2025",
			ClassName:    "7A",
			Subjects: []models.CceSubjectMark{
				{SubjectName: "Maths", Phase: "Phase 1", Mark: 40},
				{SubjectName: "Maths", Phase: "Phase 1", Mark: 45},
			},
		},
	}

	deduped, _ := DedupCceMarks(marks)
	if len(deduped[0].Subjects) != 2 {
		t.Errorf("only exact (subject, phase, mark) triples may be dropped, got %+v", deduped[0].Subjects)
	}
}

func TestDedupCceMarks_Idempotent(t *testing.T) {
	marks := models.CceMarkList{
		{AcademicYear: "2024-2025", ClassName: "7A", Subjects: []models.CceSubjectMark{{SubjectName: "Maths", Phase: "Phase 1", Mark: 40}}},
		{AcademicYear: "2024-2025", ClassName: "7A", Subjects: []models.CceSubjectMark{{SubjectName: "Maths", Phase: "Phase 1", Mark: 40}}},
	}

	once, changed := DedupCceMarks(marks)
	if !changed {
		t.Fatal("expected first pass to change the list")
	}

	twice, changed := DedupCceMarks(once)
	if changed {
		t.Error("second pass must be a no-op")
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("dedup not idempotent: %+v vs %+v", once, twice)
	}
}

func TestDedupCceMarks_CleanInputUnchanged(t *testing.T) {
	marks := models.CceMarkList{
		{AcademicYear: "2024-2025", ClassName: "7A", Subjects: []models.CceSubjectMark{{SubjectName: "Maths", Phase: "Phase 1", Mark: 40}}},
		{AcademicYear: "2024-2025", ClassName: "7B", Subjects: []models.CceSubjectMark{{SubjectName: "Maths", Phase: "Phase 1", Mark: 40}}},
	}

	deduped, changed := DedupCceMarks(marks)
	if changed {
		t.Error("clean input must not be reported as changed")
	}
	if !reflect.DeepEqual(deduped, marks) {
		t.Errorf("clean input was rewritten: %+v", deduped)
	}
}
