// Package academic computes academic-year labels. The school calendar runs
// April through March, so dates before April belong to the previous year's
// label.
package academic

import (
	"fmt"
	"time"
)

// CurrentYear returns the academic-year label for now, e.g. "2025-2026".
func CurrentYear(now time.Time) string {
	year := now.Year()
	if now.Month() < time.April {
		return fmt.Sprintf("%d-%d", year-1, year)
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}
