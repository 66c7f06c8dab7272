package vmath

// UnitVec is a direction on the unit circle in Q10: (Cos, Sin) with Cos²+Sin² ≈ Scale²
// Stands in for an angle; advanced by Rotate instead of evaluated with trig calls
type UnitVec struct {
	Cos, Sin int32
}

// Identity is angle zero
var Identity = UnitVec{Cos: Scale, Sin: 0}

// QuarterTurn is angle π/2
var QuarterTurn = UnitVec{Cos: 0, Sin: Scale}

// Step describes a fixed angular increment of roughly Multiplier/2^Shift radians
type Step struct {
	Multiplier int32
	Shift      uint
}

// Angle returns the step size in Q10 radians
func (s Step) Angle() int32 {
	return (s.Multiplier << Shift) >> s.Shift
}

// Rotate advances v by one step and pulls its magnitude back toward Scale
// Renormalization is one term of 1/sqrt(m) expanded around m = 1:
// (3 - m)/2, so drift stays bounded without iteration
func (v *UnitVec) Rotate(s Step) {
	c := v.Cos - ((s.Multiplier * v.Sin) >> s.Shift)
	sn := v.Sin + ((s.Multiplier * v.Cos) >> s.Shift)

	correction := (renormTarget - c*c - sn*sn) >> (Shift + 1)

	v.Cos = (c * correction) >> Shift
	v.Sin = (sn * correction) >> Shift
}

// Rotated returns a copy of v advanced by n steps
func (v UnitVec) Rotated(s Step, n int) UnitVec {
	for i := 0; i < n; i++ {
		v.Rotate(s)
	}
	return v
}

// MagSq returns Cos²+Sin² (Q20, Scale² is unit)
func (v UnitVec) MagSq() int32 {
	return v.Cos*v.Cos + v.Sin*v.Sin
}
