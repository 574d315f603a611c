// Package tui provides the interactive Bubble Tea dashboard for bunkmate.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/bunkmate/internal/attendance"
	"github.com/theirongolddev/bunkmate/internal/cli"
	"github.com/theirongolddev/bunkmate/internal/config"
	"github.com/theirongolddev/bunkmate/internal/tui/components"
	"github.com/theirongolddev/bunkmate/internal/tui/theme"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formValues backs the huh input form. Everything arrives as text and is
// parsed on submit; empty fields default to 0 before validation runs.
type formValues struct {
	total    string
	attended string
	target   string
}

// App is the root Bubble Tea model.
type App struct {
	cfg config.Config

	// Input form state
	form     *huh.Form
	vals     formValues
	editing  bool
	formErr  error // cross-field validation error from the last submit

	// Computed state for the current input
	input     attendance.Input
	result    attendance.Result
	insights  []attendance.Insight
	scenarios []attendance.Scenario

	// UI state
	width  int
	height int
	flash  string // one-shot status line (e.g. "copied to clipboard")
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 110
)

// NewApp creates the TUI model. If in is valid it opens straight on the
// results view, otherwise on the input form.
func NewApp(cfg config.Config, in attendance.Input) App {
	a := App{cfg: cfg}

	if err := in.Validate(); err == nil {
		a.compute(in)
	} else {
		a.startEditing(in)
	}
	return a
}

func (a *App) startEditing(in attendance.Input) {
	a.editing = true
	a.vals = formValues{}
	if in.TotalClasses > 0 {
		a.vals.total = strconv.Itoa(in.TotalClasses)
	}
	if in.AttendedClasses > 0 {
		a.vals.attended = strconv.Itoa(in.AttendedClasses)
	}
	if in.TargetPercent > 0 {
		a.vals.target = strconv.FormatFloat(in.TargetPercent, 'f', -1, 64)
	} else {
		a.vals.target = strconv.FormatFloat(a.cfg.General.DefaultTarget, 'f', -1, 64)
	}
	a.form = newInputForm(&a.vals)
}

func newInputForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Total classes held").
				Value(&v.total).
				Validate(validateCount),
			huh.NewInput().
				Title("Classes attended").
				Value(&v.attended).
				Validate(validateCount),
			huh.NewInput().
				Title("Target percentage").
				Value(&v.target).
				Validate(validateTarget),
		),
	)
}

// validateCount accepts a blank field (defaulted to 0 on submit) or a
// non-negative integer.
func validateCount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if n < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func validateTarget(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if f <= 0 || f >= 100 {
		return errors.New("must be between 0 and 100 (exclusive)")
	}
	return nil
}

// parseInput converts form values to an Input. Blank numeric fields
// default to 0; the core rejects the resulting invalid states.
func (a *App) parseInput() attendance.Input {
	atoi := func(s string) int {
		n, _ := strconv.Atoi(strings.TrimSpace(s))
		return n
	}
	target, _ := strconv.ParseFloat(strings.TrimSpace(a.vals.target), 64)
	if strings.TrimSpace(a.vals.target) == "" {
		target = a.cfg.General.DefaultTarget
	}
	return attendance.Input{
		TotalClasses:    atoi(a.vals.total),
		AttendedClasses: atoi(a.vals.attended),
		TargetPercent:   target,
	}
}

func (a *App) compute(in attendance.Input) {
	r, err := attendance.Compute(in)
	if err != nil {
		a.formErr = err
		a.startEditing(in)
		return
	}

	scenarios, _ := attendance.ProjectScenarios(in, a.cfg.Scenarios.Deltas)

	a.input = in
	a.result = r
	a.insights = attendance.Insights(in, r)
	a.scenarios = scenarios
	a.editing = false
	a.form = nil
	a.formErr = nil
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.form != nil {
		return a.form.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form == nil {
			return a, nil
		}

	case tea.KeyMsg:
		if a.editing {
			break // form owns the keyboard
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "e":
			a.startEditing(a.input)
			return a, a.form.Init()
		case "c":
			if err := clipboard.WriteAll(cli.ShareText(a.input, a.result, a.insights)); err != nil {
				a.flash = "clipboard unavailable"
			} else {
				a.flash = "copied to clipboard"
			}
			return a, nil
		}
		a.flash = ""
		return a, nil
	}

	if a.editing && a.form != nil {
		form, cmd := a.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			a.form = f
		}

		if a.form.State == huh.StateCompleted {
			a.compute(a.parseInput())
			if a.editing && a.form != nil {
				// Cross-field validation failed, back to the form.
				return a, a.form.Init()
			}
			return a, nil
		}
		if a.form.State == huh.StateAborted {
			return a, tea.Quit
		}
		return a, cmd
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}

	if a.editing && a.form != nil {
		return a.viewForm()
	}
	return a.viewResults()
}

func (a App) viewForm() string {
	t := theme.Active
	var b strings.Builder

	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	b.WriteString("\n")
	b.WriteString(title.Render("  bunkmate — attendance calculator"))
	b.WriteString("\n\n")

	if a.formErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		b.WriteString(errStyle.Render("  " + a.formErr.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(a.form.View())
	return b.String()
}

func (a App) viewResults() string {
	t := theme.Active
	cw := a.contentWidth()
	r := a.result
	var b strings.Builder

	// Metric cards
	statusColor := components.ColorForStatus(r.Status)
	cards := []components.Card{
		{Label: "Current", Value: cli.FormatPercent(r.CurrentPercent), Detail: cli.FormatRatio(a.input.AttendedClasses, a.input.TotalClasses)},
		{Label: "Status", Value: cli.StatusLabel(r.Status), Color: statusColor},
		{Label: "To Attend", Value: strconv.Itoa(r.ClassesToAttend), Detail: "to reach target"},
		{Label: "Can Bunk", Value: strconv.Itoa(r.ClassesToBunk), Detail: "and stay safe"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Progress toward target
	barWidth := components.CardInnerWidth(cw) - 22
	if barWidth < 10 {
		barWidth = 10
	}
	b.WriteString(components.ContentCard(
		"Attendance",
		components.AttendanceBar(r.CurrentPercent, a.input.TargetPercent, r.Status, barWidth),
		cw,
	))
	b.WriteString("\n")

	// Message + insights
	msgStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	insightStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	var body strings.Builder
	body.WriteString(msgStyle.Render(r.Message))
	for _, ins := range a.insights {
		body.WriteString("\n")
		marker := "•"
		switch ins.Severity {
		case attendance.SeverityAlert:
			marker = lipgloss.NewStyle().Foreground(t.Red).Render("!")
		case attendance.SeverityWarning:
			marker = lipgloss.NewStyle().Foreground(t.Orange).Render("▲")
		}
		body.WriteString(marker + " " + insightStyle.Render(ins.Text))
	}
	b.WriteString(components.ContentCard("Insights", body.String(), cw))
	b.WriteString("\n")

	// Scenario projections
	if len(a.scenarios) > 0 {
		var sc strings.Builder
		for i, s := range a.scenarios {
			if i > 0 {
				sc.WriteString("\n")
			}
			mark := lipgloss.NewStyle().Foreground(t.Red).Render("✗")
			if s.MeetsTarget {
				mark = lipgloss.NewStyle().Foreground(t.Green).Render("✓")
			}
			sc.WriteString(fmt.Sprintf("%s %-16s %s",
				mark,
				s.Label,
				insightStyle.Render(cli.FormatPercent(s.ResultingPercent)),
			))
		}
		b.WriteString(components.ContentCard("What If", sc.String(), cw))
		b.WriteString("\n")
	}

	// Footer
	help := lipgloss.NewStyle().Foreground(t.TextDim)
	footer := "  e edit   c copy   q quit"
	if a.flash != "" {
		footer += "   " + lipgloss.NewStyle().Foreground(t.Accent).Render(a.flash)
	}
	b.WriteString(help.Render(footer))
	b.WriteString("\n")

	return b.String()
}
