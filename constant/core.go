package constant

import "time"

// Animation Loop Timing
const (
	// FrameInterval is the fixed pacing delay between frames (~28 FPS)
	FrameInterval = 35 * time.Millisecond

	// StatsInterval is the number of frames between statistics log lines
	StatsInterval = 100
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "torus.log"

	// MaxLogSize triggers rotation of an existing log file on startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
