// Package terminal writes finished character grids to a text terminal.
//
// Two sinks are provided:
//   - Terminal: plain text frames over stdout, each followed by a cursor rewind so the
//     next frame overdraws in place; works on any ANSI terminal and on pipes
//   - TcellScreen: full-screen drawing through tcell, with Esc and Ctrl-C reported as
//     interrupts since raw mode swallows SIGINT
//
// Cells are row-major bytes: cells[y*width + x].
package terminal
