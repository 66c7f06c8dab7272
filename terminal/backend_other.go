//go:build !unix

package terminal

import (
	"os"

	"golang.org/x/term"
)

type stdBackend struct {
	out *os.File
}

func newBackend() Backend {
	return &stdBackend{out: os.Stdout}
}

func (b *stdBackend) Init() error { return nil }
func (b *stdBackend) Fini()       {}

func (b *stdBackend) Size() (int, int) {
	w, h, err := term.GetSize(int(b.out.Fd()))
	if err != nil {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

func (b *stdBackend) IsTerminal() bool {
	return term.IsTerminal(int(b.out.Fd()))
}

func (b *stdBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}
