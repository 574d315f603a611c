// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"github.com/theirongolddev/bunkmate/internal/attendance"
)

// FormatPercent formats a 0-100 percentage with one decimal place.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatClasses formats a class count with its unit.
// e.g., 1 -> "1 class", 4 -> "4 classes"
func FormatClasses(n int) string {
	if n == 1 {
		return "1 class"
	}
	return fmt.Sprintf("%d classes", n)
}

// FormatRatio formats attended/total as "40 / 50".
func FormatRatio(attended, total int) string {
	return fmt.Sprintf("%d / %d", attended, total)
}

// StatusLabel returns the upper-cased display label for a status.
func StatusLabel(s attendance.Status) string {
	switch s {
	case attendance.StatusSafe:
		return "SAFE"
	case attendance.StatusWarning:
		return "WARNING"
	case attendance.StatusDanger:
		return "DANGER"
	}
	return "???"
}

// FormatDelta formats a scenario delta with an explicit sign.
func FormatDelta(delta int) string {
	return fmt.Sprintf("%+d", delta)
}
