package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellScreen draws frames through a tcell screen at the top-left corner
type TcellScreen struct {
	screen tcell.Screen
	style  tcell.Style

	interrupt     chan struct{}
	interruptOnce sync.Once
	pollDone      chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcellScreen creates a TcellScreen on the controlling terminal
func NewTcellScreen() (*TcellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcellScreenFrom(screen), nil
}

// NewTcellScreenFrom wraps an existing, uninitialized screen (e.g. a simulation screen)
func NewTcellScreenFrom(screen tcell.Screen) *TcellScreen {
	return &TcellScreen{
		screen:    screen,
		style:     tcell.StyleDefault,
		interrupt: make(chan struct{}),
		pollDone:  make(chan struct{}),
	}
}

// Init enters the screen and starts watching for interrupt keys
func (s *TcellScreen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.screen.Clear()

	go s.poll()

	s.initialized = true
	return nil
}

// poll drains events until the screen is finalized
// Esc and Ctrl-C close the interrupt channel; every other event is ignored
func (s *TcellScreen) poll() {
	defer close(s.pollDone)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && isInterruptKey(key) {
			s.interruptOnce.Do(func() { close(s.interrupt) })
		}
	}
}

func isInterruptKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
	}
	return false
}

// Interrupt is closed when the user presses Esc or Ctrl-C
func (s *TcellScreen) Interrupt() <-chan struct{} {
	return s.interrupt
}

// Fini restores the terminal. Safe to call multiple times
func (s *TcellScreen) Fini() {
	s.mu.Lock()
	if !s.initialized || s.finalized {
		s.mu.Unlock()
		return
	}
	s.finalized = true
	s.mu.Unlock()

	s.screen.Fini()
	<-s.pollDone
}

// Size returns current screen dimensions
func (s *TcellScreen) Size() (int, int) {
	return s.screen.Size()
}

// Flush draws one frame and shows it
// Cells are row-major: cells[y*width + x]
func (s *TcellScreen) Flush(cells []byte, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}
	if len(cells) < width*height {
		return errShortGrid(len(cells), width, height)
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			s.screen.SetContent(x, y, rune(c), nil, s.style)
		}
	}
	s.screen.Show()
	return nil
}
