package constant

import "math"

// Target grid dimensions (fixed, not resized to the terminal)
const (
	GridWidth  = 80
	GridHeight = 22
	GridCells  = GridWidth * GridHeight // 1760

	// GridCenterX/Y is where the torus center projects
	GridCenterX = 40
	GridCenterY = 12
)

// Blank is the character of an unpopulated cell
const Blank = ' '

// DepthFar is the reset value of every depth cell; any sample that fits int8 and is not
// itself at the far limit replaces it
const DepthFar = math.MaxInt8

// LuminanceRamp is ordered darkest to brightest
const LuminanceRamp = ".,-~:;=!*#$@"

// LuminanceLevels is the number of ramp entries
const LuminanceLevels = len(LuminanceRamp)

// CursorRewindLines moves the cursor from below the last row back to the first line
// One leading line break per row plus a trailing one
const CursorRewindLines = GridHeight + 1
