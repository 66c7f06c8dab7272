package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lixenwraith/torus/render"
)

// Presenter displays a finished frame
// The buffer is only valid for the duration of the call
type Presenter interface {
	Present(buf *render.FrameBuffer) error
}

// FrameReport describes one presented frame
type FrameReport struct {
	Frame   uint64
	Stats   Stats
	Covered int
	Compute time.Duration
}

// LoopConfig controls pacing and observation of the animation loop
type LoopConfig struct {
	// Interval is the fixed delay after each presented frame
	Interval time.Duration

	// MaxFrames stops the loop after this many frames; 0 runs until ctx is cancelled
	MaxFrames int

	// Time measures compute duration; nil uses the system clock
	Time TimeProvider

	// OnFrame is called after each frame is presented, before orientation advances
	OnFrame func(FrameReport)
}

// Loop computes, presents and paces frames until ctx is done or MaxFrames is reached
// Returns ctx.Err() on cancellation, nil when the frame limit is reached
func Loop(ctx context.Context, r *Renderer, p Presenter, cfg LoopConfig) error {
	clock := cfg.Time
	if clock == nil {
		clock = NewTimeProvider()
	}

	buf := render.NewFrameBuffer()
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for n := 1; cfg.MaxFrames == 0 || n <= cfg.MaxFrames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := clock.Now()
		st, err := r.Next(buf)
		if err != nil {
			return fmt.Errorf("frame %d: %w", r.Frame(), err)
		}
		compute := clock.Now().Sub(start)

		if err := p.Present(buf); err != nil {
			return err
		}

		if cfg.OnFrame != nil {
			cfg.OnFrame(FrameReport{
				Frame:   r.Frame(),
				Stats:   st,
				Covered: buf.Covered(),
				Compute: compute,
			})
		}

		r.Advance()

		if n == cfg.MaxFrames {
			break
		}
		if err := wait(ctx, timer, cfg.Interval); err != nil {
			return err
		}
	}
	return nil
}

// wait blocks for d or until ctx is done
func wait(ctx context.Context, timer *time.Timer, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer.Reset(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
