package attendance

import (
	"strings"
	"testing"
)

func insightsFor(t *testing.T, in Input) []Insight {
	t.Helper()
	r := mustCompute(t, in)
	return Insights(in, r)
}

func TestInsights_DangerLeadsWithAlert(t *testing.T) {
	got := insightsFor(t, Input{TotalClasses: 50, AttendedClasses: 30, TargetPercent: 75})
	if len(got) == 0 {
		t.Fatal("no insights for danger input")
	}
	if got[0].Severity != SeverityAlert {
		t.Fatalf("first insight severity = %s, want alert", got[0].Severity)
	}
}

func TestInsights_UnreachableRecoveryFlagged(t *testing.T) {
	// 1/10 at 90% needs ceil((900-100)/10) = 80 straight classes, far more
	// than the 10 held so far.
	got := insightsFor(t, Input{TotalClasses: 10, AttendedClasses: 1, TargetPercent: 90})
	if len(got) == 0 {
		t.Fatal("no insights")
	}
	if !strings.Contains(got[0].Text, "renegotiating") {
		t.Fatalf("first insight = %q, want the renegotiate-target rule first", got[0].Text)
	}
}

func TestInsights_SafeWithCushion(t *testing.T) {
	got := insightsFor(t, Input{TotalClasses: 50, AttendedClasses: 40, TargetPercent: 75})

	var cushion bool
	for _, ins := range got {
		if ins.Severity == SeverityAlert {
			t.Fatalf("safe input produced alert: %q", ins.Text)
		}
		if strings.Contains(ins.Text, "Cushion") {
			cushion = true
		}
	}
	if !cushion {
		t.Fatal("expected cushion insight for safe input with bunkable classes")
	}
}

func TestInsights_ZeroMarginWarning(t *testing.T) {
	// Exactly at target: safe status but nothing to spare.
	got := insightsFor(t, Input{TotalClasses: 40, AttendedClasses: 30, TargetPercent: 75})
	if len(got) == 0 {
		t.Fatal("no insights")
	}
	if got[0].Severity != SeverityWarning || !strings.Contains(got[0].Text, "zero margin") {
		t.Fatalf("first insight = %+v, want zero-margin warning", got[0])
	}
}

func TestInsights_SmallSampleNote(t *testing.T) {
	got := insightsFor(t, Input{TotalClasses: 4, AttendedClasses: 4, TargetPercent: 75})

	var small, perfect bool
	for _, ins := range got {
		if strings.Contains(ins.Text, "swings") {
			small = true
		}
		if strings.Contains(ins.Text, "Perfect attendance") {
			perfect = true
		}
	}
	if !small || !perfect {
		t.Fatalf("insights = %+v, want both small-sample and perfect-attendance notes", got)
	}
}
