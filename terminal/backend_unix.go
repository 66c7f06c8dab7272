//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	out   *os.File
	outFd int
}

func newBackend() Backend {
	return &unixBackend{
		out:   os.Stdout,
		outFd: int(os.Stdout.Fd()),
	}
}

// Init is a no-op: output needs neither raw mode nor the alternate screen
func (b *unixBackend) Init() error {
	return nil
}

func (b *unixBackend) Fini() {}

func (b *unixBackend) Size() (int, int) {
	return getTerminalSize(b.outFd)
}

func (b *unixBackend) IsTerminal() bool {
	return term.IsTerminal(b.outFd)
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return fallbackWidth, fallbackHeight
	}
	return int(ws.Col), int(ws.Row)
}
