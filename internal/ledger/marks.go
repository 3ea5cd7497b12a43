// Package ledger applies single mark-writing mutations to the embedded mark
// collections owned by students and classes. Every function takes the current
// collection and returns the updated one; callers persist the result. Natural
// keys (academic year, subject+phase, mark id) gate every upsert so repeated
// calls cannot violate the uniqueness invariants.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/apperr"
	"github.com/scorecard-system/backend/internal/models"
)

// AddClassMark appends a credit or penalty entry. Item names may repeat;
// each entry gets its own opaque mark id.
func AddClassMark(list models.MarkItemList, year, item string, score float64, description string, now time.Time) (models.MarkItemList, models.MarkItem) {
	entry := models.MarkItem{
		MarkID:       uuid.New(),
		AcademicYear: year,
		Item:         item,
		Score:        score,
		Description:  description,
		Date:         now,
	}
	return append(list, entry), entry
}

// EditClassMark replaces the item, score and description of the entry with
// the given mark id, keeping its academic year and mark id.
func EditClassMark(list models.MarkItemList, markID uuid.UUID, item string, score float64, description string, now time.Time) (models.MarkItemList, *models.MarkItem, error) {
	for i := range list {
		if list[i].MarkID == markID {
			list[i].Item = item
			list[i].Score = score
			list[i].Description = description
			list[i].Date = now
			return list, &list[i], nil
		}
	}
	return list, nil, apperr.NotFound("mark %s not found", markID)
}

// DeleteClassMark removes the entry with the given mark id.
func DeleteClassMark(list models.MarkItemList, markID uuid.UUID) (models.MarkItemList, error) {
	for i := range list {
		if list[i].MarkID == markID {
			return append(list[:i:i], list[i+1:]...), nil
		}
	}
	return list, apperr.NotFound("mark %s not found", markID)
}

// AppendExtraMark appends an extracurricular mark. Duplicates across calls
// are allowed.
func AppendExtraMark(list models.ExtraMarkList, year string, programID *uuid.UUID, programName string, mark float64, now time.Time) (models.ExtraMarkList, models.ExtraMark) {
	entry := models.ExtraMark{
		MarkID:       uuid.New(),
		AcademicYear: year,
		ProgramID:    programID,
		ProgramName:  programName,
		Mark:         mark,
		Date:         now,
	}
	return append(list, entry), entry
}

// UpsertMentorMark overwrites the mark for the year if one exists, otherwise
// appends a new entry. The returned flag reports whether an existing entry
// was overwritten.
func UpsertMentorMark(list models.MentorMarkList, year string, mark float64) (models.MentorMarkList, bool) {
	for i := range list {
		if list[i].AcademicYear == year {
			list[i].Mark = mark
			return list, true
		}
	}
	return append(list, models.MentorMark{AcademicYear: year, Mark: mark}), false
}

// UpsertCceMark locates the (year, className) group, creating it if absent,
// and upserts the (subjectName, phase) pair inside it. The returned flag
// reports whether an existing pair was overwritten.
func UpsertCceMark(list models.CceMarkList, year, className, subjectName, phase string, mark float64) (models.CceMarkList, bool) {
	for i := range list {
		if list[i].AcademicYear != year || list[i].ClassName != className {
			continue
		}
		for j := range list[i].Subjects {
			if list[i].Subjects[j].SubjectName == subjectName && list[i].Subjects[j].Phase == phase {
				list[i].Subjects[j].Mark = mark
				return list, true
			}
		}
		list[i].Subjects = append(list[i].Subjects, models.CceSubjectMark{
			SubjectName: subjectName,
			Phase:       phase,
			Mark:        mark,
		})
		return list, false
	}
	return append(list, models.CceMark{
		AcademicYear: year,
		ClassName:    className,
		Subjects:     []models.CceSubjectMark{{SubjectName: subjectName, Phase: phase, Mark: mark}},
	}), false
}

// AddSubject adds a subject name with set semantics.
func AddSubject(subjects models.StringList, name string) (models.StringList, error) {
	for _, existing := range subjects {
		if existing == name {
			return subjects, apperr.Conflict("subject %q already exists", name)
		}
	}
	return append(subjects, name), nil
}

// RemoveSubject removes a subject name.
func RemoveSubject(subjects models.StringList, name string) (models.StringList, error) {
	for i, existing := range subjects {
		if existing == name {
			return append(subjects[:i:i], subjects[i+1:]...), nil
		}
	}
	return subjects, apperr.NotFound("subject %q not found", name)
}
