package render

import (
	"github.com/lixenwraith/torus/constant"
)

// ClampLevel maps a raw luminance level onto a valid ramp index
// Back-facing samples come out negative and land on the darkest entry
func ClampLevel(level int32) int {
	if level < 0 {
		return 0
	}
	if level >= int32(constant.LuminanceLevels) {
		return constant.LuminanceLevels - 1
	}
	return int(level)
}

// Shade returns the ramp character for a raw luminance level
func Shade(level int32) byte {
	return constant.LuminanceRamp[ClampLevel(level)]
}
