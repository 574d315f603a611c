package attendance

import (
	"errors"
	"math"
	"testing"
)

func mustCompute(t *testing.T, in Input) Result {
	t.Helper()
	r, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute(%+v): %v", in, err)
	}
	return r
}

func TestCompute_Examples(t *testing.T) {
	tests := []struct {
		name        string
		in          Input
		wantPercent float64
		wantStatus  Status
		wantAttend  int
		wantBunk    int
	}{
		{
			name:        "safe with cushion",
			in:          Input{TotalClasses: 50, AttendedClasses: 40, TargetPercent: 75},
			wantPercent: 80.0,
			wantStatus:  StatusSafe,
			wantAttend:  0,
			wantBunk:    3,
		},
		{
			name:        "deep danger",
			in:          Input{TotalClasses: 50, AttendedClasses: 30, TargetPercent: 75},
			wantPercent: 60.0,
			wantStatus:  StatusDanger,
			wantAttend:  30,
			wantBunk:    0,
		},
		{
			name:        "warning band lower edge inclusive",
			in:          Input{TotalClasses: 20, AttendedClasses: 14, TargetPercent: 75},
			wantPercent: 70.0,
			wantStatus:  StatusWarning,
			wantAttend:  4,
			wantBunk:    0,
		},
		{
			name:        "exactly at target is safe",
			in:          Input{TotalClasses: 40, AttendedClasses: 30, TargetPercent: 75},
			wantPercent: 75.0,
			wantStatus:  StatusSafe,
			wantAttend:  0,
			wantBunk:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustCompute(t, tt.in)
			if math.Abs(r.CurrentPercent-tt.wantPercent) > 1e-9 {
				t.Errorf("CurrentPercent = %v, want %v", r.CurrentPercent, tt.wantPercent)
			}
			if r.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", r.Status, tt.wantStatus)
			}
			if r.ClassesToAttend != tt.wantAttend {
				t.Errorf("ClassesToAttend = %d, want %d", r.ClassesToAttend, tt.wantAttend)
			}
			if r.ClassesToBunk != tt.wantBunk {
				t.Errorf("ClassesToBunk = %d, want %d", r.ClassesToBunk, tt.wantBunk)
			}
			if r.Message == "" {
				t.Error("Message is empty")
			}
		})
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"zero total", Input{TotalClasses: 0, AttendedClasses: 0, TargetPercent: 75}},
		{"negative total", Input{TotalClasses: -5, AttendedClasses: 0, TargetPercent: 75}},
		{"attended above total", Input{TotalClasses: 5, AttendedClasses: 10, TargetPercent: 75}},
		{"negative attended", Input{TotalClasses: 5, AttendedClasses: -1, TargetPercent: 75}},
		{"target zero", Input{TotalClasses: 10, AttendedClasses: 5, TargetPercent: 0}},
		{"target hundred", Input{TotalClasses: 10, AttendedClasses: 5, TargetPercent: 100}},
		{"target above hundred", Input{TotalClasses: 10, AttendedClasses: 5, TargetPercent: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Compute(%+v) err = %v, want ErrInvalidInput", tt.in, err)
			}
		})
	}
}

// meetsAfterAttending reports whether attending k more classes reaches the target.
func meetsAfterAttending(in Input, k int) bool {
	return float64(in.AttendedClasses+k)/float64(in.TotalClasses+k)*100 >= in.TargetPercent-1e-9
}

// meetsAfterBunking reports whether missing m more classes still meets the target.
func meetsAfterBunking(in Input, m int) bool {
	return float64(in.AttendedClasses)/float64(in.TotalClasses+m)*100 >= in.TargetPercent-1e-9
}

func TestClassesToAttend_Minimal(t *testing.T) {
	targets := []float64{50, 66.67, 75, 80, 85, 90, 95}
	for total := 1; total <= 60; total++ {
		for attended := 0; attended <= total; attended++ {
			for _, target := range targets {
				in := Input{TotalClasses: total, AttendedClasses: attended, TargetPercent: target}
				r := mustCompute(t, in)

				if !meetsAfterAttending(in, r.ClassesToAttend) {
					t.Fatalf("%+v: attending %d does not reach target", in, r.ClassesToAttend)
				}
				if r.ClassesToAttend > 0 && meetsAfterAttending(in, r.ClassesToAttend-1) {
					t.Fatalf("%+v: ClassesToAttend %d is not minimal", in, r.ClassesToAttend)
				}
			}
		}
	}
}

func TestClassesToBunk_Maximal(t *testing.T) {
	targets := []float64{50, 66.67, 75, 80, 85, 90, 95}
	for total := 1; total <= 60; total++ {
		for attended := 0; attended <= total; attended++ {
			for _, target := range targets {
				in := Input{TotalClasses: total, AttendedClasses: attended, TargetPercent: target}
				r := mustCompute(t, in)

				if r.ClassesToBunk > 0 && !meetsAfterBunking(in, r.ClassesToBunk) {
					t.Fatalf("%+v: bunking %d already violates target", in, r.ClassesToBunk)
				}
				if meetsAfterBunking(in, 0) && meetsAfterBunking(in, r.ClassesToBunk+1) {
					t.Fatalf("%+v: ClassesToBunk %d is not maximal", in, r.ClassesToBunk)
				}
			}
		}
	}
}

// The bunk formula divides by target, not 100-target: missed classes only
// inflate the denominator. Pin that asymmetry down with a hand-worked case.
func TestClassesToBunk_DenominatorAsymmetry(t *testing.T) {
	in := Input{TotalClasses: 50, AttendedClasses: 40, TargetPercent: 75}
	r := mustCompute(t, in)

	// floor((100*40 - 75*50)/75) = floor(250/75) = 3.
	// The symmetric-but-wrong form floor(250/25) would say 10.
	if r.ClassesToBunk != 3 {
		t.Fatalf("ClassesToBunk = %d, want 3", r.ClassesToBunk)
	}
	// 40/53 = 75.47% holds, 40/54 = 74.07% does not.
	if !meetsAfterBunking(in, 3) || meetsAfterBunking(in, 4) {
		t.Fatal("bunk bound does not match direct evaluation")
	}
}

func TestCompute_MonotonicInTarget(t *testing.T) {
	in := Input{TotalClasses: 40, AttendedClasses: 28}

	prevAttend := -1
	prevBunk := math.MaxInt
	for target := 5.0; target < 100; target += 5 {
		in.TargetPercent = target
		r := mustCompute(t, in)

		if r.ClassesToAttend < prevAttend {
			t.Fatalf("target %.0f: ClassesToAttend decreased %d -> %d", target, prevAttend, r.ClassesToAttend)
		}
		if r.ClassesToBunk > prevBunk {
			t.Fatalf("target %.0f: ClassesToBunk increased %d -> %d", target, prevBunk, r.ClassesToBunk)
		}
		prevAttend = r.ClassesToAttend
		prevBunk = r.ClassesToBunk
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := Input{TotalClasses: 37, AttendedClasses: 29, TargetPercent: 72.5}
	a := mustCompute(t, in)
	b := mustCompute(t, in)
	if a != b {
		t.Fatalf("repeated Compute differs: %+v vs %+v", a, b)
	}
}

func TestCompute_FullAttendance(t *testing.T) {
	for _, target := range []float64{1, 50, 75, 99.9} {
		in := Input{TotalClasses: 25, AttendedClasses: 25, TargetPercent: target}
		r := mustCompute(t, in)
		if r.CurrentPercent != 100 {
			t.Fatalf("target %.1f: CurrentPercent = %v, want 100", target, r.CurrentPercent)
		}
		if r.Status != StatusSafe {
			t.Fatalf("target %.1f: Status = %s, want safe", target, r.Status)
		}
		if r.ClassesToAttend != 0 {
			t.Fatalf("target %.1f: ClassesToAttend = %d, want 0", target, r.ClassesToAttend)
		}
	}
}

func TestProjectScenarios(t *testing.T) {
	in := Input{TotalClasses: 50, AttendedClasses: 40, TargetPercent: 75}
	deltas := []int{5, 10, -3, -5}

	scenarios, err := ProjectScenarios(in, deltas)
	if err != nil {
		t.Fatalf("ProjectScenarios: %v", err)
	}
	if len(scenarios) != len(deltas) {
		t.Fatalf("got %d scenarios, want %d", len(scenarios), len(deltas))
	}

	for i, s := range scenarios {
		if s.Delta != deltas[i] {
			t.Errorf("scenario %d: Delta = %d, want %d (order must be preserved)", i, s.Delta, deltas[i])
		}
	}

	// attend 5: 45/55 = 81.82%; miss 5: 40/55 = 72.73%
	if math.Abs(scenarios[0].ResultingPercent-45.0/55.0*100) > 1e-9 {
		t.Errorf("attend-5 percent = %v", scenarios[0].ResultingPercent)
	}
	if !scenarios[0].MeetsTarget {
		t.Error("attend-5 should meet target")
	}
	if scenarios[3].MeetsTarget {
		t.Errorf("miss-5 (%.2f%%) should not meet target", scenarios[3].ResultingPercent)
	}
}

func TestProjectScenarios_InvalidInput(t *testing.T) {
	_, err := ProjectScenarios(Input{TotalClasses: 0, TargetPercent: 75}, []int{5})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestClassesToReachTarget(t *testing.T) {
	in := Input{TotalClasses: 50, AttendedClasses: 30, TargetPercent: 60}

	// ceil((75*50 - 100*30)/25) = ceil(750/25) = 30
	n, err := ClassesToReachTarget(in, 75)
	if err != nil {
		t.Fatalf("ClassesToReachTarget: %v", err)
	}
	if n != 30 {
		t.Fatalf("classes to reach 75%% = %d, want 30", n)
	}

	// Already above a lower target.
	n, err = ClassesToReachTarget(in, 50)
	if err != nil {
		t.Fatalf("ClassesToReachTarget: %v", err)
	}
	if n != 0 {
		t.Fatalf("classes to reach 50%% = %d, want 0", n)
	}

	for _, bad := range []float64{0, -10, 100, 150} {
		if _, err := ClassesToReachTarget(in, bad); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("target %v: err = %v, want ErrInvalidInput", bad, err)
		}
	}
}

func TestCompute_PercentInRange(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for attended := 0; attended <= total; attended++ {
			r := mustCompute(t, Input{TotalClasses: total, AttendedClasses: attended, TargetPercent: 75})
			if r.CurrentPercent < 0 || r.CurrentPercent > 100 {
				t.Fatalf("%d/%d: CurrentPercent = %v out of [0,100]", attended, total, r.CurrentPercent)
			}
		}
	}
}
