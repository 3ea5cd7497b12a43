package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/apperr"
	"github.com/scorecard-system/backend/internal/models"
)

var now = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestAddClassMark(t *testing.T) {
	list, entry := AddClassMark(nil, "2024-2025", "Cleanliness", 10, "weekly inspection", now)
	if len(list) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(list))
	}
	if entry.MarkID == uuid.Nil {
		t.Error("expected a generated mark id")
	}
	if entry.Score != 10 || entry.AcademicYear != "2024-2025" {
		t.Errorf("unexpected entry %+v", entry)
	}

	// Same item name again is a distinct entry, not a duplicate.
	list, second := AddClassMark(list, "2024-2025", "Cleanliness", 5, "", now)
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if second.MarkID == entry.MarkID {
		t.Error("entries must not share mark ids")
	}
}

func TestEditClassMark(t *testing.T) {
	list, entry := AddClassMark(nil, "2024-2025", "Sports", 10, "", now)

	list, edited, err := EditClassMark(list, entry.MarkID, "Sports Day", 12, "revised", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if edited.Item != "Sports Day" || edited.Score != 12 || edited.MarkID != entry.MarkID {
		t.Errorf("unexpected edited entry %+v", edited)
	}
	if list[0].Score != 12 {
		t.Errorf("list not updated in place, score %v", list[0].Score)
	}

	_, _, err = EditClassMark(list, uuid.New(), "x", 1, "", now)
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found for unknown mark id, got %v", err)
	}
}

func TestDeleteClassMark(t *testing.T) {
	list, first := AddClassMark(nil, "2024-2025", "A", 1, "", now)
	list, second := AddClassMark(list, "2024-2025", "B", 2, "", now)

	list, err := DeleteClassMark(list, first.MarkID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].MarkID != second.MarkID {
		t.Errorf("unexpected remaining entries %+v", list)
	}

	_, err = DeleteClassMark(list, first.MarkID)
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found for deleted mark, got %v", err)
	}
}

func TestUpsertMentorMark(t *testing.T) {
	list, updated := UpsertMentorMark(nil, "2024-2025", 20)
	if updated {
		t.Error("first write must not report an overwrite")
	}

	list, updated = UpsertMentorMark(list, "2024-2025", 35)
	if !updated {
		t.Error("second write for the same year must overwrite")
	}
	if len(list) != 1 || list[0].Mark != 35 {
		t.Errorf("expected single entry with mark 35, got %+v", list)
	}

	list, _ = UpsertMentorMark(list, "2025-2026", 10)
	if len(list) != 2 {
		t.Errorf("expected one entry per year, got %+v", list)
	}
}

func TestUpsertCceMark(t *testing.T) {
	list, updated := UpsertCceMark(nil, "2024-2025", "7A", "Maths", "Phase 1", 40)
	if updated || len(list) != 1 {
		t.Fatalf("expected fresh group, got updated=%v list=%+v", updated, list)
	}

	// New phase joins the existing group.
	list, updated = UpsertCceMark(list, "2024-2025", "7A", "Maths", "Phase 2", 30)
	if updated || len(list) != 1 || len(list[0].Subjects) != 2 {
		t.Fatalf("expected second subject entry in same group, got %+v", list)
	}

	// Same (subject, phase) overwrites the mark.
	list, updated = UpsertCceMark(list, "2024-2025", "7A", "Maths", "Phase 1", 45)
	if !updated || len(list[0].Subjects) != 2 {
		t.Fatalf("expected in-place overwrite, got updated=%v subjects=%+v", updated, list[0].Subjects)
	}
	if list[0].Subjects[0].Mark != 45 {
		t.Errorf("expected mark 45, got %v", list[0].Subjects[0].Mark)
	}

	// Different class name opens a new group.
	list, _ = UpsertCceMark(list, "2024-2025", "7B", "Maths", "Phase 1", 10)
	if len(list) != 2 {
		t.Errorf("expected a group per (year, class), got %+v", list)
	}
}

func TestAddSubject(t *testing.T) {
	subjects, err := AddSubject(nil, "Maths")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = AddSubject(subjects, "Maths")
	if !apperr.IsConflict(err) {
		t.Errorf("expected conflict on duplicate subject, got %v", err)
	}
}

func TestRemoveSubject(t *testing.T) {
	subjects := models.StringList{"Maths", "Science"}

	subjects, err := RemoveSubject(subjects, "Maths")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subjects) != 1 || subjects[0] != "Science" {
		t.Errorf("unexpected subjects %+v", subjects)
	}

	_, err = RemoveSubject(subjects, "Maths")
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found for absent subject, got %v", err)
	}
}
