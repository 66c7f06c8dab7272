package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/torus/constant"
	"github.com/lixenwraith/torus/vmath"
)

// ErrDepthRange reports a depth proxy that does not fit int8
// Only reachable if the geometry constants are changed inconsistently
var ErrDepthRange = errors.New("depth proxy outside int8 range")

// Sample is one projected surface point
type Sample struct {
	X, Y  int32 // Screen cell, may lie outside the viewport
	Depth int8  // Smaller is nearer
	Level int32 // Raw luminance level, unclamped
}

// InViewport reports whether the sample is accepted by the rasterizer
// Row 0 and column 0 are never drawn
func (s Sample) InViewport() bool {
	return s.X > 0 && s.X < constant.GridWidth && s.Y > 0 && s.Y < constant.GridHeight
}

var (
	tubeStep  = vmath.Step{Multiplier: constant.TubeStepMultiplier, Shift: constant.TubeStepShift}
	torusStep = vmath.Step{Multiplier: constant.TorusStepMultiplier, Shift: constant.TorusStepShift}
)

// Sweep visits every surface sample for orientation (a, b) in sampling order
// Tube angle i is the inner loop, torus angle j the outer; both start at angle zero
func Sweep(a, b vmath.UnitVec, visit func(Sample)) error {
	j := vmath.Identity
	for row := 0; row < constant.TorusSamples; row++ {
		i := vmath.Identity
		for col := 0; col < constant.TubeSamples; col++ {
			s, err := project(a, b, i, j)
			if err != nil {
				return fmt.Errorf("torus row %d, tube sample %d: %w", row, col, err)
			}
			visit(s)
			i.Rotate(tubeStep)
		}
		j.Rotate(torusStep)
	}
	return nil
}

// project maps the surface point at tube angle i, torus angle j under orientation (a, b)
// All terms are Q10 except x6, which carries the Q20 view distance
func project(a, b, i, j vmath.UnitVec) (Sample, error) {
	const (
		r1 = constant.MinorRadius
		r2 = constant.MajorRadius
		k2 = constant.ViewDistance
	)

	// Circle of the tube cross-section before revolving
	x0 := r1*j.Cos + r2
	x1 := vmath.Mul(i.Cos, x0)
	x2 := vmath.Mul(a.Cos, j.Sin)
	x3 := vmath.Mul(i.Sin, x0)
	x4 := r1*x2 - vmath.Mul(a.Sin, x3)
	x5 := vmath.Mul(a.Sin, j.Sin)

	// Distance from viewer along the camera axis
	x6 := k2 + r1*vmath.Scale*x5 + a.Cos*x3
	x7 := vmath.Mul(j.Cos, i.Sin)

	// Checked before the perspective divide: an in-range depth keeps x6 well above zero
	depth := (x6 - k2) >> constant.DepthShift
	if depth < math.MinInt8 || depth > math.MaxInt8 {
		return Sample{}, fmt.Errorf("%w: %d", ErrDepthRange, depth)
	}

	// Rotation by B about the view axis, then perspective divide (truncates toward zero)
	x := constant.GridCenterX + constant.ProjectionScaleX*(b.Cos*x1-b.Sin*x4)/x6
	y := constant.GridCenterY + constant.ProjectionScaleY*(b.Cos*x4+b.Sin*x1)/x6

	// Surface normal dotted with the light direction
	n := (-a.Cos*x7 - b.Cos*(vmath.Mul(-a.Sin, x7)+x2) - i.Cos*vmath.Mul(j.Cos, b.Sin)) >> vmath.Shift
	level := (n - x5) >> constant.LuminanceShift

	return Sample{
		X:     x,
		Y:     y,
		Depth: int8(depth),
		Level: level,
	}, nil
}
