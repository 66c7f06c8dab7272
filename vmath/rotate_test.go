package vmath

import (
	"testing"
)

// Step parameters used by the renderer sweeps and orientation
var rendererSteps = []struct {
	name string
	step Step
}{
	{"Tube sweep", Step{Multiplier: 5, Shift: 8}},
	{"Torus sweep", Step{Multiplier: 9, Shift: 7}},
	{"Orientation A", Step{Multiplier: 5, Shift: 7}},
	{"Orientation B", Step{Multiplier: 5, Shift: 8}},
}

// TestRotateMagnitudeStable verifies renormalization keeps |v|² near Scale² without drift
func TestRotateMagnitudeStable(t *testing.T) {
	const iterations = 10000
	const tolerance = ScaleSq / 100

	starts := []UnitVec{Identity, QuarterTurn, {Cos: -Scale, Sin: 0}}

	for _, tt := range rendererSteps {
		for _, start := range starts {
			t.Run(tt.name, func(t *testing.T) {
				v := start
				for i := 0; i < iterations; i++ {
					v.Rotate(tt.step)
					d := v.MagSq() - ScaleSq
					if Abs(d) > tolerance {
						t.Fatalf("Iteration %d from %+v: |v|² = %d, drift %d exceeds %d", i, start, v.MagSq(), d, tolerance)
					}
				}
			})
		}
	}
}

// TestRotateFullRevolution verifies sweep step counts close the circle
func TestRotateFullRevolution(t *testing.T) {
	tests := []struct {
		name  string
		step  Step
		steps int
	}{
		{"Tube sweep", Step{Multiplier: 5, Shift: 8}, 324},
		{"Torus sweep", Step{Multiplier: 9, Shift: 7}, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Sin changes sign from negative to non-negative exactly once per revolution
			v := Identity
			crossings := 0
			prev := v.Sin
			for i := 0; i < tt.steps; i++ {
				v.Rotate(tt.step)
				if prev < 0 && v.Sin >= 0 {
					crossings++
				}
				prev = v.Sin
			}
			if crossings > 1 {
				t.Errorf("Expected at most one revolution in %d steps, got %d", tt.steps, crossings)
			}
			if v.Cos < Scale*9/10 {
				t.Errorf("Expected to end near angle zero after %d steps, got %+v", tt.steps, v)
			}
		})
	}
}

func TestRotateFirstStep(t *testing.T) {
	v := Identity
	v.Rotate(Step{Multiplier: 5, Shift: 8})

	// newCos = 1024, newSin = 20, correction = (3145728 - 1048576 - 400) >> 11 = 1023
	if v.Cos != 1023 || v.Sin != 19 {
		t.Errorf("Expected (1023, 19), got (%d, %d)", v.Cos, v.Sin)
	}
}

func TestRotatedDoesNotMutate(t *testing.T) {
	v := Identity
	r := v.Rotated(Step{Multiplier: 5, Shift: 7}, 10)
	if v != Identity {
		t.Errorf("Expected receiver unchanged, got %+v", v)
	}
	if r == Identity {
		t.Error("Expected rotated copy to differ from identity")
	}
}

func TestStepAngle(t *testing.T) {
	if a := (Step{Multiplier: 5, Shift: 7}).Angle(); a != 40 {
		t.Errorf("Expected 40, got %d", a)
	}
	if a := (Step{Multiplier: 9, Shift: 7}).Angle(); a != 72 {
		t.Errorf("Expected 72, got %d", a)
	}
}

func TestMulClamp(t *testing.T) {
	if got := Mul(Scale, Scale); got != Scale {
		t.Errorf("Expected Mul(1,1) = %d, got %d", Scale, got)
	}
	if got := Mul(-Half, Scale); got != -Half {
		t.Errorf("Expected Mul(-0.5,1) = %d, got %d", -Half, got)
	}
	if got := Clamp(-3, 0, 11); got != 0 {
		t.Errorf("Expected clamp to 0, got %d", got)
	}
	if got := Clamp(14, 0, 11); got != 11 {
		t.Errorf("Expected clamp to 11, got %d", got)
	}
}
