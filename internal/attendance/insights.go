package attendance

import "fmt"

// Severity orders insights for display: notes are informational, warnings
// deserve attention, alerts demand it.
type Severity string

const (
	SeverityNote    Severity = "note"
	SeverityWarning Severity = "warning"
	SeverityAlert   Severity = "alert"
)

// Insight is one textual recommendation derived from a computed result.
type Insight struct {
	Severity Severity
	Text     string
}

// insightRule is one predicate -> message pair. Rules are independent and
// evaluated in fixed priority order; every matching rule emits.
type insightRule struct {
	severity Severity
	applies  func(Input, Result) bool
	text     func(Input, Result) string
}

var insightRules = []insightRule{
	{
		severity: SeverityAlert,
		applies: func(in Input, r Result) bool {
			return r.Status == StatusDanger && r.ClassesToAttend > in.TotalClasses
		},
		text: func(in Input, r Result) string {
			return fmt.Sprintf("Recovery needs %d straight classes, more than the %d held so far. Consider renegotiating the target.",
				r.ClassesToAttend, in.TotalClasses)
		},
	},
	{
		severity: SeverityAlert,
		applies: func(_ Input, r Result) bool { return r.Status == StatusDanger },
		text: func(_ Input, r Result) string {
			return fmt.Sprintf("Attendance is well below target. The next %d classes are must-attend.", r.ClassesToAttend)
		},
	},
	{
		severity: SeverityWarning,
		applies: func(_ Input, r Result) bool { return r.Status == StatusWarning },
		text: func(_ Input, r Result) string {
			return fmt.Sprintf("You're inside the warning band. %d more attended %s puts you back above target.",
				r.ClassesToAttend, plural(r.ClassesToAttend, "class", "classes"))
		},
	},
	{
		severity: SeverityWarning,
		applies: func(_ Input, r Result) bool {
			return r.Status == StatusSafe && r.ClassesToBunk == 0
		},
		text: func(_ Input, r Result) string {
			return "You're at target with zero margin. One missed class drops you below it."
		},
	},
	{
		severity: SeverityNote,
		applies: func(_ Input, r Result) bool {
			return r.Status == StatusSafe && r.ClassesToBunk > 0
		},
		text: func(_ Input, r Result) string {
			return fmt.Sprintf("Cushion available: up to %d %s can be missed without dropping below target.",
				r.ClassesToBunk, plural(r.ClassesToBunk, "class", "classes"))
		},
	},
	{
		severity: SeverityNote,
		applies: func(in Input, _ Result) bool {
			return in.AttendedClasses == in.TotalClasses
		},
		text: func(_ Input, _ Result) string {
			return "Perfect attendance so far."
		},
	},
	{
		severity: SeverityNote,
		applies:  func(in Input, _ Result) bool { return in.TotalClasses < 10 },
		text: func(in Input, _ Result) string {
			return fmt.Sprintf("Only %d classes held; each one still swings the percentage a lot.", in.TotalClasses)
		},
	},
}

// Insights evaluates the rule list against a computed result, in priority
// order. The input must be the same one the result was computed from.
func Insights(in Input, r Result) []Insight {
	var out []Insight
	for _, rule := range insightRules {
		if rule.applies(in, r) {
			out = append(out, Insight{Severity: rule.severity, Text: rule.text(in, r)})
		}
	}
	return out
}
