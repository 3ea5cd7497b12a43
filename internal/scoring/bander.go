package scoring

import (
	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/models"
)

// UnknownTheme is returned when a score falls outside every configured band.
// It is a valid outcome, not an error.
const UnknownTheme = "Unknown"

// Classify maps a net score to the label of the theme whose inclusive
// [MinMark, MaxMark] range contains it.
func Classify(themes []models.Theme, score float64) string {
	for _, theme := range themes {
		if score >= theme.MinMark && score <= theme.MaxMark {
			return theme.Label
		}
	}
	return UnknownTheme
}

// Overlaps reports whether two inclusive ranges share any value.
func Overlaps(aMin, aMax, bMin, bMax float64) bool {
	return aMin <= bMax && bMin <= aMax
}

// FindOverlap returns the theme whose range overlaps [minMark, maxMark],
// skipping the theme identified by excludeID (the one being updated). When
// several themes overlap, the one with the lowest band is reported, so the
// named offender does not depend on storage order.
func FindOverlap(themes []models.Theme, minMark, maxMark float64, excludeID uuid.UUID) *models.Theme {
	var clash *models.Theme
	for i := range themes {
		if themes[i].ID == excludeID {
			continue
		}
		if !Overlaps(minMark, maxMark, themes[i].MinMark, themes[i].MaxMark) {
			continue
		}
		if clash == nil || themes[i].MinMark < clash.MinMark {
			clash = &themes[i]
		}
	}
	return clash
}
