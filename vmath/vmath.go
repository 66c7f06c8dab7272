package vmath

// Q10 Fixed Point constants
const (
	Shift = 10
	Scale = 1 << Shift // 1024
	Half  = 1 << (Shift - 1)

	// ScaleSq is Scale² (unit magnitude squared)
	ScaleSq = Scale * Scale

	// renormTarget is 3·Scale², the Taylor anchor for 1/sqrt around unit magnitude
	renormTarget = 3 * ScaleSq
)

// --- Arithmetic ---

func FromInt(i int32) int32 { return i << Shift }
func ToInt(f int32) int32   { return f >> Shift }

// Mul multiplies two Q10 values
// Shift is arithmetic; negative products round toward -inf
func Mul(a, b int32) int32 {
	return (a * b) >> Shift
}

// Abs returns absolute value
func Abs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
