package terminal

import (
	"io"
	"os"
	"sync"
)

// Terminal writes plain text frames to a Backend
// Safe for use from one render goroutine plus a concurrent Fini
type Terminal struct {
	backend Backend
	output  *outputBuffer

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal writing to stdout
func New() *Terminal {
	return newTerminal(newBackend())
}

// NewWriter creates a Terminal over an arbitrary writer; no control sequences besides
// the per-frame cursor rewind are emitted
func NewWriter(w io.Writer) *Terminal {
	return newTerminal(&writerBackend{w: w})
}

func newTerminal(b Backend) *Terminal {
	return &Terminal{
		backend: b,
		output:  newOutputBuffer(b),
	}
}

// Init prepares the backend and hides the cursor on a real terminal
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	if t.backend.IsTerminal() {
		if err := t.output.writeRaw(csiCursorHide); err != nil {
			return err
		}
	}

	t.initialized = true
	return nil
}

// Fini moves the cursor below the last frame and shows it. Safe to call multiple times
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.backend.IsTerminal() {
		t.output.release()
		t.output.writeRaw(csiSGR0)
		t.output.writeRaw(csiCursorShow)
	}

	t.backend.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (int, int) {
	return t.backend.Size()
}

// IsTerminal reports whether output goes to a terminal rather than a pipe or file
func (t *Terminal) IsTerminal() bool {
	return t.backend.IsTerminal()
}

// Flush writes one frame
// Cells are row-major: cells[y*width + x]
func (t *Terminal) Flush(cells []byte, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return nil
	}
	return t.output.flush(cells, width, height)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
