package game

import (
	"context"
	"log"
	"time"

	"neoncity/internal/world"

	"github.com/dustin/go-humanize"
)

// RunHeadless steps the world at a fixed dt without a window. frames <= 0
// runs until ctx is cancelled. When pace is set each frame waits for its
// wall-clock slot so observers see real-time motion.
func RunHeadless(ctx context.Context, w *world.World, frames int, dt float64, pace bool, pub Publisher, logger *log.Logger) {
	var ticker *time.Ticker
	if pace {
		ticker = time.NewTicker(time.Duration(dt * float64(time.Second)))
		defer ticker.Stop()
	}

	started := time.Now()
	for i := 0; frames <= 0 || i < frames; i++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			break
		}
		w.Step(dt)
		if pub != nil {
			pub.Publish(w.State().Snapshot())
		}
	}

	if logger != nil {
		state := w.State()
		logger.Printf("Headless run: %s frames, %.1fs simulated in %s",
			humanize.Comma(int64(state.Frame)), state.Elapsed, time.Since(started).Round(time.Millisecond))
	}
}
