package components

import (
	"fmt"

	"github.com/theirongolddev/bunkmate/internal/attendance"
	"github.com/theirongolddev/bunkmate/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForStatus maps a projection status to its theme color.
func ColorForStatus(s attendance.Status) lipgloss.Color {
	t := theme.Active
	switch s {
	case attendance.StatusSafe:
		return t.Green
	case attendance.StatusWarning:
		return t.Orange
	default:
		return t.Red
	}
}

// AttendanceBar renders the current percentage as a labeled progress bar
// colored by status, with a target marker annotation after it.
func AttendanceBar(current, target float64, status attendance.Status, barWidth int) string {
	t := theme.Active

	pct := current / 100
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(ColorForStatus(status))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(ColorForStatus(status)).Bold(true)
	targetStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	return bar.ViewAs(pct) +
		" " + pctStyle.Render(fmt.Sprintf("%5.1f%%", current)) +
		targetStyle.Render(fmt.Sprintf("  target %.1f%%", target))
}
