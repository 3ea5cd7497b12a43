package ledger

import (
	"testing"

	"github.com/scorecard-system/backend/internal/apperr"
)

func TestAddPKVMark(t *testing.T) {
	entries, err := AddPKVMark(nil, "2024-2025", "Sem 1", "Phase 1", 50, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || len(entries[0].Marks) != 1 {
		t.Fatalf("unexpected entries %+v", entries)
	}

	// Second add for the same (year, semester, phase) must conflict.
	_, err = AddPKVMark(entries, "2024-2025", "Sem 1", "Phase 1", 60, now)
	if !apperr.IsConflict(err) {
		t.Errorf("expected conflict on duplicate phase, got %v", err)
	}

	// A different phase in the same entry is fine.
	entries, err = AddPKVMark(entries, "2024-2025", "Sem 1", "Phase 2", 60, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || len(entries[0].Marks) != 2 {
		t.Errorf("expected phases to share the entry, got %+v", entries)
	}

	// A different semester opens a new entry.
	entries, err = AddPKVMark(entries, "2024-2025", "Sem 2", "Phase 1", 40, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected an entry per (year, semester), got %+v", entries)
	}
}

func TestUpdatePKVMark(t *testing.T) {
	// Update before any add must fail.
	_, err := UpdatePKVMark(nil, "2024-2025", "Sem 1", "Phase 1", 10, now)
	if !apperr.IsConflict(err) {
		t.Errorf("expected conflict for update of missing mark, got %v", err)
	}

	entries, _ := AddPKVMark(nil, "2024-2025", "Sem 1", "Phase 1", 50, now)

	entries, err = UpdatePKVMark(entries, "2024-2025", "Sem 1", "Phase 1", 70, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Marks[0].Mark != 70 {
		t.Errorf("expected mark 70, got %v", entries[0].Marks[0].Mark)
	}

	_, err = UpdatePKVMark(entries, "2024-2025", "Sem 1", "Phase 2", 70, now)
	if !apperr.IsConflict(err) {
		t.Errorf("expected conflict for unknown phase, got %v", err)
	}
}
