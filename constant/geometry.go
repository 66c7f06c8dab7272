package constant

// Torus geometry in Q10 fixed point
const (
	// MinorRadius scales the tube cross-section term (R1)
	// Multiplies Q10 unit vectors directly, so 1 means radius 1.0
	MinorRadius = 1

	// MajorRadius is the distance from torus center to tube center (R2), Q10 for 2.0
	MajorRadius = 2048

	// ViewDistance is the camera distance to torus center (K2), Q20 for 5.0
	ViewDistance = 5120 * 1024
)

// Projection scale: screen cells per unit after perspective divide
const (
	ProjectionScaleX = 30
	ProjectionScaleY = 15
)

// Surface sampling grid
const (
	// TorusSamples is the outer loop count around the central axis
	TorusSamples = 90

	// TubeSamples is the inner loop count around the tube cross-section
	TubeSamples = 324

	// SamplesPerFrame is the total number of surface points visited per frame
	SamplesPerFrame = TorusSamples * TubeSamples
)

// Angle step parameters (multiplier, shift): one step ≈ multiplier/2^shift radians
const (
	// Tube sweep: 324 steps of 5/256 close the circle
	TubeStepMultiplier = 5
	TubeStepShift      = 8

	// Torus sweep: 90 steps of 9/128 close the circle
	TorusStepMultiplier = 9
	TorusStepShift      = 7

	// Orientation A advances once per frame
	OrientationAStepMultiplier = 5
	OrientationAStepShift      = 7

	// Orientation B advances once per frame, half the rate of A
	OrientationBStepMultiplier = 5
	OrientationBStepShift      = 8
)

// DepthShift reduces (x6 - K2) to the int8 depth proxy
const DepthShift = 15

// LuminanceShift reduces the combined normal·light term to a ramp level
const LuminanceShift = 7
