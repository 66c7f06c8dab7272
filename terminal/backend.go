package terminal

import "io"

// Backend abstracts platform-specific terminal output
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)
	IsTerminal() bool

	// I/O
	io.Writer
}

// writerBackend wraps a plain writer, used for pipes and tests
type writerBackend struct {
	w io.Writer
}

func (b *writerBackend) Init() error                 { return nil }
func (b *writerBackend) Fini()                       {}
func (b *writerBackend) Size() (int, int)            { return fallbackWidth, fallbackHeight }
func (b *writerBackend) IsTerminal() bool            { return false }
func (b *writerBackend) Write(p []byte) (int, error) { return b.w.Write(p) }

// Reported when the size cannot be queried
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)
