package academic

import (
	"testing"
	"time"
)

func TestCurrentYear(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"January", time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"March 31", time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC), "2024-2025"},
		{"April 1", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{"Mid Year", time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{"December", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{"February Leap Year", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), "2023-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentYear(tt.date); got != tt.expected {
				t.Errorf("CurrentYear(%v) = %s, want %s", tt.date, got, tt.expected)
			}
		})
	}
}
