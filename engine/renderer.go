package engine

import (
	"github.com/lixenwraith/torus/constant"
	"github.com/lixenwraith/torus/render"
	"github.com/lixenwraith/torus/vmath"
)

// Stats summarizes one rasterized frame
type Stats struct {
	Samples     int // Surface points visited
	Accepted    int // Writes that improved a cell's depth
	OutOfBounds int // Rejected by the viewport test
	Occluded    int // Rejected by the depth test
}

// Rejected returns samples discarded by either test
func (s Stats) Rejected() int {
	return s.OutOfBounds + s.Occluded
}

// Rasterize resets buf and fills it with the torus under orientation (a, b)
// Pure function of (a, b): identical inputs give byte-identical buffers
func Rasterize(a, b vmath.UnitVec, buf *render.FrameBuffer) (Stats, error) {
	var st Stats
	buf.Reset()

	err := Sweep(a, b, func(s Sample) {
		st.Samples++
		if !s.InViewport() {
			st.OutOfBounds++
			return
		}
		if buf.Plot(int(s.X), int(s.Y), s.Depth, render.Shade(s.Level)) {
			st.Accepted++
		} else {
			st.Occluded++
		}
	})
	return st, err
}

// Renderer owns the persistent orientation of the torus
// Angle A tilts the torus toward the viewer, angle B spins it in the screen plane
type Renderer struct {
	a, b         vmath.UnitVec
	stepA, stepB vmath.Step
	frame        uint64
}

// New creates a renderer at the default starting orientation (A = B = π/2)
func New() *Renderer {
	return NewAt(vmath.QuarterTurn, vmath.QuarterTurn)
}

// NewAt creates a renderer at an explicit orientation
func NewAt(a, b vmath.UnitVec) *Renderer {
	return &Renderer{
		a:     a,
		b:     b,
		stepA: vmath.Step{Multiplier: constant.OrientationAStepMultiplier, Shift: constant.OrientationAStepShift},
		stepB: vmath.Step{Multiplier: constant.OrientationBStepMultiplier, Shift: constant.OrientationBStepShift},
	}
}

// Orientation returns the current (A, B) pair
func (r *Renderer) Orientation() (a, b vmath.UnitVec) {
	return r.a, r.b
}

// Frame returns the number of completed Advance calls
func (r *Renderer) Frame() uint64 {
	return r.frame
}

// Next rasterizes the current orientation into buf without changing renderer state
func (r *Renderer) Next(buf *render.FrameBuffer) (Stats, error) {
	return Rasterize(r.a, r.b, buf)
}

// Advance steps both orientation angles by one frame
func (r *Renderer) Advance() {
	r.a.Rotate(r.stepA)
	r.b.Rotate(r.stepB)
	r.frame++
}
