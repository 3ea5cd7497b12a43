package services

import (
	"testing"
	"time"

	"github.com/scorecard-system/backend/internal/apperr"
)

func TestProgramCreateValidation(t *testing.T) {
	fixed := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	// Validation runs before any storage access, so no DB is needed.
	svc := &ProgramService{now: func() time.Time { return fixed }}

	tests := []struct {
		name  string
		pname string
		start time.Time
		end   time.Time
	}{
		{"Missing Name", "", fixed.Add(time.Hour), fixed.Add(48 * time.Hour)},
		{"Zero Dates", "Chess Club", time.Time{}, time.Time{}},
		{"End Before Start", "Chess Club", fixed.Add(48 * time.Hour), fixed.Add(time.Hour)},
		// Starting earlier the same day is still in the past.
		{"Start Earlier Today", "Chess Club", fixed.Add(-time.Hour), fixed.Add(48 * time.Hour)},
		{"Start Yesterday", "Chess Club", fixed.Add(-24 * time.Hour), fixed.Add(48 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.pname, "", tt.start, tt.end, nil)
			if !apperr.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}
