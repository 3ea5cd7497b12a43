package ledger

import (
	"github.com/scorecard-system/backend/internal/models"
)

type cceGroupKey struct {
	year      string
	className string
}

type cceSubjectKey struct {
	subjectName string
	phase       string
	mark        float64
}

// DedupCceMarks merges duplicate CCE groups sharing (academicYear, className)
// into one and drops exact duplicate (subjectName, phase, mark) triples,
// preserving first-seen order. Running it on already-clean input returns the
// input unchanged, so the operation is idempotent.
func DedupCceMarks(marks models.CceMarkList) (models.CceMarkList, bool) {
	changed := false
	merged := make(models.CceMarkList, 0, len(marks))
	groupIndex := make(map[cceGroupKey]int)
	seen := make(map[cceGroupKey]map[cceSubjectKey]bool)

	for _, group := range marks {
		key := cceGroupKey{year: group.AcademicYear, className: group.ClassName}
		i, exists := groupIndex[key]
		if !exists {
			i = len(merged)
			groupIndex[key] = i
			seen[key] = make(map[cceSubjectKey]bool)
			merged = append(merged, models.CceMark{
				AcademicYear: group.AcademicYear,
				ClassName:    group.ClassName,
			})
		} else {
			changed = true
		}

		for _, subject := range group.Subjects {
			sk := cceSubjectKey{subjectName: subject.SubjectName, phase: subject.Phase, mark: subject.Mark}
			if seen[key][sk] {
				changed = true
				continue
			}
			seen[key][sk] = true
			merged[i].Subjects = append(merged[i].Subjects, subject)
		}
	}

	if !changed {
		return marks, false
	}
	return merged, true
}
