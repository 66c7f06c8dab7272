package render

// Sink accepts a finished row-major character grid: cells[y*width + x]
// Implemented by terminal.Terminal and terminal.TcellScreen
type Sink interface {
	Flush(cells []byte, width, height int) error
}
