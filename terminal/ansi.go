package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")
	csiRIS  = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes a raw mode backend may have left behind
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorUp writes cursor up N lines
func writeCursorUp(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('A')
}

// writeCursorDown writes cursor down N lines
func writeCursorDown(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('B')
}
