package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/bunkmate/internal/attendance"
)

// Report is the serializable form of one calculation, used by the share
// command's JSON output.
type Report struct {
	TotalClasses    int      `json:"total_classes"`
	AttendedClasses int      `json:"attended_classes"`
	TargetPercent   float64  `json:"target_percent"`
	CurrentPercent  float64  `json:"current_percent"`
	Status          string   `json:"status"`
	ClassesToAttend int      `json:"classes_to_attend"`
	ClassesToBunk   int      `json:"classes_to_bunk"`
	Message         string   `json:"message"`
	Insights        []string `json:"insights,omitempty"`
}

// NewReport builds a Report from a computed result.
func NewReport(in attendance.Input, r attendance.Result, insights []attendance.Insight) Report {
	rep := Report{
		TotalClasses:    in.TotalClasses,
		AttendedClasses: in.AttendedClasses,
		TargetPercent:   in.TargetPercent,
		CurrentPercent:  r.CurrentPercent,
		Status:          string(r.Status),
		ClassesToAttend: r.ClassesToAttend,
		ClassesToBunk:   r.ClassesToBunk,
		Message:         r.Message,
	}
	for _, ins := range insights {
		rep.Insights = append(rep.Insights, ins.Text)
	}
	return rep
}

// ShareText renders a plain-text report with no ANSI styling, suitable
// for pasting into chats or saving to a file.
func ShareText(in attendance.Input, r attendance.Result, insights []attendance.Insight) string {
	var b strings.Builder

	b.WriteString("Attendance Report\n")
	b.WriteString("=================\n")
	fmt.Fprintf(&b, "Classes attended:  %s\n", FormatRatio(in.AttendedClasses, in.TotalClasses))
	fmt.Fprintf(&b, "Current:           %s\n", FormatPercent(r.CurrentPercent))
	fmt.Fprintf(&b, "Target:            %s\n", FormatPercent(in.TargetPercent))
	fmt.Fprintf(&b, "Status:            %s\n", StatusLabel(r.Status))
	fmt.Fprintf(&b, "Classes to attend: %d\n", r.ClassesToAttend)
	fmt.Fprintf(&b, "Safe to bunk:      %d\n", r.ClassesToBunk)
	b.WriteString("\n")
	b.WriteString(r.Message)
	b.WriteString("\n")

	if len(insights) > 0 {
		b.WriteString("\n")
		for _, ins := range insights {
			fmt.Fprintf(&b, "- %s\n", ins.Text)
		}
	}

	return b.String()
}
