package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/torus/constant"
)

// FrameBuffer is the character grid plus parallel depth grid for one frame
// Row-major, index = y*width + x
// Mutated only through Reset and Plot
type FrameBuffer struct {
	chars  []byte
	depth  []int8
	width  int
	height int
}

// NewFrameBuffer creates a reset buffer with the fixed grid dimensions
func NewFrameBuffer() *FrameBuffer {
	return newFrameBuffer(constant.GridWidth, constant.GridHeight)
}

func newFrameBuffer(width, height int) *FrameBuffer {
	size := width * height
	b := &FrameBuffer{
		chars:  make([]byte, size),
		depth:  make([]int8, size),
		width:  width,
		height: height,
	}
	b.Reset()
	return b
}

// Reset blanks every cell and pushes every depth to the far sentinel using exponential copy
func (b *FrameBuffer) Reset() {
	if len(b.chars) == 0 {
		return
	}
	b.chars[0] = constant.Blank
	b.depth[0] = constant.DepthFar
	for filled := 1; filled < len(b.chars); filled *= 2 {
		copy(b.chars[filled:], b.chars[:filled])
		copy(b.depth[filled:], b.depth[:filled])
	}
}

// Width returns the grid width in cells
func (b *FrameBuffer) Width() int { return b.width }

// Height returns the grid height in cells
func (b *FrameBuffer) Height() int { return b.height }

// inBounds returns true if in grid bounds
func (b *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// index converts validated coordinates; out-of-grid access is a caller bug
func (b *FrameBuffer) index(x, y int) int {
	if !b.inBounds(x, y) {
		panic(fmt.Sprintf("render: cell (%d,%d) outside %dx%d grid", x, y, b.width, b.height))
	}
	return y*b.width + x
}

// Plot writes ch at (x, y) if depth is strictly nearer than the stored depth
// Returns true if the cell was updated
func (b *FrameBuffer) Plot(x, y int, depth int8, ch byte) bool {
	idx := b.index(x, y)
	if depth >= b.depth[idx] {
		return false
	}
	b.depth[idx] = depth
	b.chars[idx] = ch
	return true
}

// At returns the character at (x, y)
func (b *FrameBuffer) At(x, y int) byte {
	return b.chars[b.index(x, y)]
}

// DepthAt returns the stored depth at (x, y)
func (b *FrameBuffer) DepthAt(x, y int) int8 {
	return b.depth[b.index(x, y)]
}

// Row returns row y as a read-only view into the character grid
func (b *FrameBuffer) Row(y int) []byte {
	start := b.index(0, y)
	return b.chars[start : start+b.width : start+b.width]
}

// Bytes returns the row-major character grid; callers must not modify it
func (b *FrameBuffer) Bytes() []byte {
	return b.chars
}

// Depths returns the row-major depth grid; callers must not modify it
func (b *FrameBuffer) Depths() []int8 {
	return b.depth
}

// Covered returns the number of populated cells
func (b *FrameBuffer) Covered() int {
	n := 0
	for _, d := range b.depth {
		if d != constant.DepthFar {
			n++
		}
	}
	return n
}

// String returns the grid as newline-joined rows
func (b *FrameBuffer) String() string {
	var sb strings.Builder
	sb.Grow(len(b.chars) + b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(b.Row(y))
	}
	return sb.String()
}
