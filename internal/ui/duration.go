package ui

import (
	"fmt"

	"github.com/KirkDiggler/sora/internal/models"
)

// ambiguousMillisThreshold separates seconds from milliseconds when a source
// does not declare its unit. Any second-denominated value above a day is
// misread as milliseconds; sources that can declare their unit should.
const ambiguousMillisThreshold = 86400

// NormalizeSeconds converts a raw duration into whole seconds.
// Non-positive values normalize to 0.
func NormalizeSeconds(value int64, unit models.DurationUnit) int64 {
	if value <= 0 {
		return 0
	}

	switch unit {
	case models.DurationUnitSeconds:
		return value
	case models.DurationUnitMilliseconds:
		return value / 1000
	default:
		if value > ambiguousMillisThreshold {
			return value / 1000
		}
		return value
	}
}

// TrackSeconds returns the canonical length of t and whether it is known.
// Streams and tracks without a positive length are unknown.
func TrackSeconds(t *models.Track) (int64, bool) {
	if t == nil || t.IsStream {
		return 0, false
	}

	seconds := NormalizeSeconds(t.Duration, t.DurationUnit)
	if seconds <= 0 {
		return 0, false
	}
	return seconds, true
}

// FormatDuration renders seconds as H:MM:SS, or M:SS under an hour.
// Zero and negative values render as "00:00".
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "00:00"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
