package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/torus/constant"
	"github.com/lixenwraith/torus/engine"
	"github.com/lixenwraith/torus/render"
	"github.com/lixenwraith/torus/terminal"
)

var (
	backendFlag = flag.String("backend", "ansi", "Output backend: ansi, tcell")
	framesFlag  = flag.Int("frames", 0, "Stop after N frames (0 = run until interrupted)")
	debugFlag   = flag.Bool("debug", false, "Write debug log to "+constant.LogDir+"/"+constant.LogFileName)
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() (code int) {
	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			log.Printf("panic: %v\n%s", r, debug.Stack())

			// Use \r\n in case a raw mode backend was active
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTORUS CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			code = 1
		}
	}()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := openOutput(ctx, *backendFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	log.Printf("start: backend=%s frames=%d interval=%v samples/frame=%d",
		*backendFlag, *framesFlag, constant.FrameInterval, constant.SamplesPerFrame)

	err = animate(out.ctx, out.sink, *framesFlag)
	cause := context.Cause(out.ctx)
	out.close()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("render aborted: %v", err)
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 1
	}
	if cause != nil {
		log.Printf("exit: %v", cause)
	} else {
		log.Printf("exit: frame limit reached")
	}
	return 0
}

// output bundles an initialized sink with its teardown and the context that stops it
type output struct {
	sink  render.Sink
	ctx   context.Context
	close func()
}

// openOutput initializes the selected backend
func openOutput(ctx context.Context, backend string) (*output, error) {
	switch backend {
	case "ansi":
		term := terminal.New()
		if err := term.Init(); err != nil {
			return nil, err
		}
		warnSize(term.Size())
		return &output{sink: term, ctx: ctx, close: term.Fini}, nil

	case "tcell":
		scr, err := terminal.NewTcellScreen()
		if err != nil {
			return nil, err
		}
		if err := scr.Init(); err != nil {
			return nil, err
		}
		warnSize(scr.Size())

		// Raw mode swallows SIGINT; the screen reports Esc/Ctrl-C instead
		ctx, cancel := context.WithCancelCause(ctx)
		go func() {
			select {
			case <-scr.Interrupt():
				cancel(errInterruptKey)
			case <-ctx.Done():
			}
		}()
		return &output{
			sink: scr,
			ctx:  ctx,
			close: func() {
				cancel(nil)
				scr.Fini()
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown backend %q (want ansi or tcell)", backend)
}

var errInterruptKey = errors.New("interrupt key")

// warnSize logs when the terminal cannot hold a full frame; the grid is never resized
func warnSize(width, height int) {
	if width < constant.GridWidth || height < constant.CursorRewindLines {
		log.Printf("terminal %dx%d smaller than %dx%d frame, output will wrap",
			width, height, constant.GridWidth, constant.CursorRewindLines)
	}
}

// animate runs the frame loop against sink until ctx is done or frames is reached
func animate(ctx context.Context, sink render.Sink, frames int) error {
	return engine.Loop(ctx, engine.New(), render.NewOrchestrator(sink), engine.LoopConfig{
		Interval:  constant.FrameInterval,
		MaxFrames: frames,
		OnFrame:   logStats,
	})
}

// logStats writes a statistics line every StatsInterval frames
func logStats(fr engine.FrameReport) {
	if fr.Frame%constant.StatsInterval != 0 {
		return
	}
	log.Printf("frame %d: covered=%d accepted=%d out=%d occluded=%d compute=%v",
		fr.Frame, fr.Covered, fr.Stats.Accepted, fr.Stats.OutOfBounds, fr.Stats.Occluded, fr.Compute)
}
