package render

// Orchestrator hands finished frames to a terminal sink
// Satisfies engine.Presenter
type Orchestrator struct {
	sink   Sink
	frames uint64
}

// NewOrchestrator creates an orchestrator writing to sink
func NewOrchestrator(sink Sink) *Orchestrator {
	return &Orchestrator{sink: sink}
}

// Present flushes the buffer's character grid to the sink
func (o *Orchestrator) Present(buf *FrameBuffer) error {
	if err := o.sink.Flush(buf.Bytes(), buf.Width(), buf.Height()); err != nil {
		return err
	}
	o.frames++
	return nil
}

// Frames returns the number of frames successfully presented
func (o *Orchestrator) Frames() uint64 {
	return o.frames
}
