package ui

import (
	"fmt"
	"strings"
)

// ProgressSlots is the fixed number of segments in a progress bar
const ProgressSlots = 10

const (
	progressFilled = "█"
	progressEmpty  = "…"
	progressMarker = "🔘"
)

// ProgressSegments splits ProgressSlots into filled and empty parts.
// filled+empty is always ProgressSlots.
func ProgressSegments(current, total int64) (filled, empty int) {
	if total <= 0 || current <= 0 {
		return 0, ProgressSlots
	}

	filled = int(current * ProgressSlots / total)
	if filled > ProgressSlots {
		filled = ProgressSlots
	}
	return filled, ProgressSlots - filled
}

// ProgressBar renders "elapsed ███🔘……… total". Unknown totals render "00:00".
func ProgressBar(current, total int64) string {
	if total <= 0 {
		return FormatDuration(0)
	}

	filled, empty := ProgressSegments(current, total)
	bar := strings.Repeat(progressFilled, filled) + progressMarker + strings.Repeat(progressEmpty, empty)

	return fmt.Sprintf("%s %s %s", FormatDuration(current), bar, FormatDuration(total))
}
