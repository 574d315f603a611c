// Package attendance computes attendance projections: current percentage,
// safety status, and how many future classes must be attended or can be
// skipped while staying at or above a target percentage.
package attendance

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by all validation failures.
var ErrInvalidInput = errors.New("invalid input")

// Status classifies how the current percentage sits against the target.
type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// warningBand is how many percentage points below target still count as
// "warning" rather than "danger". Lower bounds of both bands are inclusive.
const warningBand = 5.0

// Input holds one attendance calculation request.
type Input struct {
	TotalClasses    int
	AttendedClasses int
	TargetPercent   float64
}

// Validate checks the input invariants. TargetPercent must be strictly
// inside (0,100): 100 would divide by zero in the classes-to-attend
// closed form, and 0 would do the same for classes-to-bunk.
func (in Input) Validate() error {
	if in.TotalClasses <= 0 {
		return fmt.Errorf("%w: totalClasses must be positive", ErrInvalidInput)
	}
	if in.AttendedClasses < 0 || in.AttendedClasses > in.TotalClasses {
		return fmt.Errorf("%w: attendedClasses out of range", ErrInvalidInput)
	}
	if in.TargetPercent <= 0 || in.TargetPercent >= 100 {
		return fmt.Errorf("%w: targetPercentage out of range", ErrInvalidInput)
	}
	return nil
}

// Result is the projection derived from one Input. Recomputed fresh on
// every call, never mutated.
type Result struct {
	CurrentPercent  float64
	Status          Status
	ClassesToAttend int
	ClassesToBunk   int
	Message         string
}

// Scenario is one what-if projection: attend (positive delta) or miss
// (negative delta) that many future classes.
type Scenario struct {
	Label            string
	Delta            int
	ResultingPercent float64
	MeetsTarget      bool
}

// ceilEps counters float rounding in the closed forms so that a quotient
// that is exactly 30.0 on paper doesn't ceil to 31 (or floor to 29).
const ceilEps = 1e-9

// Compute derives the full projection for one input.
func Compute(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	total := float64(in.TotalClasses)
	attended := float64(in.AttendedClasses)
	target := in.TargetPercent

	r := Result{
		CurrentPercent:  attended / total * 100,
		ClassesToAttend: classesToAttend(total, attended, target),
		ClassesToBunk:   classesToBunk(total, attended, target),
	}

	switch {
	case r.CurrentPercent >= target:
		r.Status = StatusSafe
	case r.CurrentPercent >= target-warningBand:
		r.Status = StatusWarning
	default:
		r.Status = StatusDanger
	}

	r.Message = message(r, target)
	return r, nil
}

// classesToAttend is the smallest k >= 0 with
// (attended+k)/(total+k)*100 >= target. Each future class is both
// attended and held, so it lands in numerator and denominator.
func classesToAttend(total, attended, target float64) int {
	k := math.Ceil((target*total-100*attended)/(100-target) - ceilEps)
	if k < 0 {
		return 0
	}
	return int(k)
}

// classesToBunk is the largest m >= 0 with
// attended/(total+m)*100 >= target. Missed classes grow the denominator
// only, which is why this divides by target rather than 100-target.
func classesToBunk(total, attended, target float64) int {
	m := math.Floor((100*attended-target*total)/target + ceilEps)
	if m < 0 {
		return 0
	}
	return int(m)
}

func message(r Result, target float64) string {
	gap := math.Abs(r.CurrentPercent - target)
	switch r.Status {
	case StatusSafe:
		if r.ClassesToBunk == 0 {
			return fmt.Sprintf("You're %.1f%% above target but can't afford to miss a class.", gap)
		}
		return fmt.Sprintf("You're %.1f%% above target. You can bunk up to %d more %s.",
			gap, r.ClassesToBunk, plural(r.ClassesToBunk, "class", "classes"))
	case StatusWarning:
		return fmt.Sprintf("You're %.1f%% below target. Attend the next %d %s to get back on track.",
			gap, r.ClassesToAttend, plural(r.ClassesToAttend, "class", "classes"))
	default:
		return fmt.Sprintf("You're %.1f%% below target. You must attend the next %d %s straight.",
			gap, r.ClassesToAttend, plural(r.ClassesToAttend, "class", "classes"))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// ProjectScenarios evaluates each delta independently, preserving input
// order. Positive deltas are future classes attended, negative deltas
// future classes missed.
func ProjectScenarios(in Input, deltas []int) ([]Scenario, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	scenarios := make([]Scenario, 0, len(deltas))
	for _, d := range deltas {
		attended := float64(in.AttendedClasses)
		if d > 0 {
			attended += float64(d)
		}
		total := float64(in.TotalClasses) + math.Abs(float64(d))

		pct := attended / total * 100
		scenarios = append(scenarios, Scenario{
			Label:            scenarioLabel(d),
			Delta:            d,
			ResultingPercent: pct,
			MeetsTarget:      pct >= in.TargetPercent,
		})
	}
	return scenarios, nil
}

func scenarioLabel(delta int) string {
	if delta >= 0 {
		return fmt.Sprintf("attend next %d", delta)
	}
	return fmt.Sprintf("miss next %d", -delta)
}

// ClassesToReachTarget returns the minimum future classes (all attended)
// needed to reach an arbitrary target, independent of the input's own
// TargetPercent. The target must lie in (0,100).
func ClassesToReachTarget(in Input, target float64) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	if target <= 0 || target >= 100 {
		return 0, fmt.Errorf("%w: target out of range", ErrInvalidInput)
	}
	return classesToAttend(float64(in.TotalClasses), float64(in.AttendedClasses), target), nil
}
