package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/models"
)

func theme(label string, min, max float64) models.Theme {
	t := models.Theme{Label: label, MinMark: min, MaxMark: max}
	t.ID = uuid.New()
	return t
}

func TestClassify(t *testing.T) {
	themes := []models.Theme{
		theme("Green", 600, 1000),
		theme("Blue", 500, 599),
		theme("Red", 0, 499),
	}

	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{"Top Band", 800, "Green"},
		{"Upper Bound Inclusive", 1000, "Green"},
		{"Lower Bound Inclusive", 600, "Green"},
		{"Middle Band", 550, "Blue"},
		{"Bottom Band", 0, "Red"},
		{"Outside All Bands", 1500, UnknownTheme},
		{"Negative Score", -10, UnknownTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(themes, tt.score); got != tt.expected {
				t.Errorf("Classify(%v) = %s, want %s", tt.score, got, tt.expected)
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	themes := []models.Theme{theme("Green", 600, 1000)}
	first := Classify(themes, 700)
	second := Classify(themes, 700)
	if first != second {
		t.Errorf("classification not stable: %s vs %s", first, second)
	}
}

func TestClassify_NoThemes(t *testing.T) {
	if got := Classify(nil, 42); got != UnknownTheme {
		t.Errorf("expected %s with no themes, got %s", UnknownTheme, got)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aMin, aMax, bMin, bMax float64
		expected               bool
	}{
		{"Disjoint Below", 0, 10, 20, 30, false},
		{"Disjoint Above", 20, 30, 0, 10, false},
		{"Touching Bounds", 0, 10, 10, 20, true},
		{"Contained", 5, 8, 0, 10, true},
		{"Partial", 550, 650, 500, 599, true},
		{"Identical", 0, 10, 0, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aMin, tt.aMax, tt.bMin, tt.bMax); got != tt.expected {
				t.Errorf("Overlaps(%v,%v,%v,%v) = %v, want %v", tt.aMin, tt.aMax, tt.bMin, tt.bMax, got, tt.expected)
			}
		})
	}
}

func TestFindOverlap(t *testing.T) {
	green := theme("Green", 600, 1000)
	blue := theme("Blue", 500, 599)
	themes := []models.Theme{green, blue}

	t.Run("Range 550 650 Names Blue", func(t *testing.T) {
		// 550-650 overlaps both bands; the lowest one is reported.
		clash := FindOverlap(themes, 550, 650, uuid.Nil)
		if clash == nil || clash.Label != "Blue" {
			t.Fatalf("expected Blue, got %+v", clash)
		}
	})

	t.Run("Offender Independent Of Order", func(t *testing.T) {
		clash := FindOverlap([]models.Theme{blue, green}, 550, 650, uuid.Nil)
		if clash == nil || clash.Label != "Blue" {
			t.Fatalf("expected Blue, got %+v", clash)
		}
	})

	t.Run("Updating Theme Skips Itself", func(t *testing.T) {
		if clash := FindOverlap(themes, 500, 580, blue.ID); clash != nil {
			t.Errorf("expected no overlap when updating Blue in place, got %s", clash.Label)
		}
	})

	t.Run("No Overlap", func(t *testing.T) {
		if clash := FindOverlap(themes, 0, 499, uuid.Nil); clash != nil {
			t.Errorf("expected no overlap, got %s", clash.Label)
		}
	})
}
