package ledger

import (
	"time"

	"github.com/scorecard-system/backend/internal/apperr"
	"github.com/scorecard-system/backend/internal/models"
)

func findPKVEntry(entries models.PKVEntryList, year, semester string) int {
	for i := range entries {
		if entries[i].AcademicYear == year && entries[i].Semester == semester {
			return i
		}
	}
	return -1
}

// AddPKVMark records a phase mark for (year, semester). The phase must not
// already exist for that key.
func AddPKVMark(entries models.PKVEntryList, year, semester, phase string, mark float64, now time.Time) (models.PKVEntryList, error) {
	i := findPKVEntry(entries, year, semester)
	if i < 0 {
		return append(entries, models.PKVEntry{
			AcademicYear: year,
			Semester:     semester,
			Marks:        []models.PKVPhaseMark{{Phase: phase, Mark: mark, Date: now}},
		}), nil
	}
	for _, existing := range entries[i].Marks {
		if existing.Phase == phase {
			return entries, apperr.Conflict("PKV mark for %s %s phase %q already exists", year, semester, phase)
		}
	}
	entries[i].Marks = append(entries[i].Marks, models.PKVPhaseMark{Phase: phase, Mark: mark, Date: now})
	return entries, nil
}

// UpdatePKVMark overwrites an existing phase mark for (year, semester). The
// phase must have been added first.
func UpdatePKVMark(entries models.PKVEntryList, year, semester, phase string, mark float64, now time.Time) (models.PKVEntryList, error) {
	i := findPKVEntry(entries, year, semester)
	if i >= 0 {
		for j := range entries[i].Marks {
			if entries[i].Marks[j].Phase == phase {
				entries[i].Marks[j].Mark = mark
				entries[i].Marks[j].Date = now
				return entries, nil
			}
		}
	}
	return entries, apperr.Conflict("no PKV mark recorded for %s %s phase %q", year, semester, phase)
}
