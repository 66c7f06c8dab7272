package terminal

import (
	"bufio"
	"fmt"
	"io"
)

// outputBuffer serializes frames into a single buffered write per frame
type outputBuffer struct {
	writer *bufio.Writer

	// rewound is the number of lines the cursor was moved up after the last frame
	rewound int
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer) *outputBuffer {
	return &outputBuffer{
		writer: bufio.NewWriterSize(w, 4096),
	}
}

// flush writes the grid row-major, one line break before each row and one after the last,
// then rewinds the cursor over every line break so the next frame overdraws in place
func (o *outputBuffer) flush(cells []byte, width, height int) error {
	expectedSize := width * height
	if len(cells) < expectedSize {
		return errShortGrid(len(cells), width, height)
	}

	w := o.writer
	for y := 0; y < height; y++ {
		w.WriteByte('\n')
		w.Write(cells[y*width : (y+1)*width])
	}
	w.WriteByte('\n')
	writeCursorUp(w, height+1)
	o.rewound = height + 1

	return w.Flush()
}

// release moves the cursor below the last frame so the shell prompt does not overwrite it
func (o *outputBuffer) release() error {
	if o.rewound == 0 {
		return nil
	}
	writeCursorDown(o.writer, o.rewound)
	o.writer.WriteByte('\n')
	o.rewound = 0
	return o.writer.Flush()
}

// writeRaw writes and flushes control bytes
func (o *outputBuffer) writeRaw(data []byte) error {
	if _, err := o.writer.Write(data); err != nil {
		return err
	}
	return o.writer.Flush()
}

// errShortGrid reports a cell slice smaller than the declared grid
func errShortGrid(n, width, height int) error {
	return fmt.Errorf("terminal: %d cells for %dx%d grid", n, width, height)
}
