package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/OpticalFlyer/pong/render"
	"github.com/OpticalFlyer/pong/session"
)

// runHeadless plays frames with the paddle on autopilot and renders every
// frame into a Recorder, without a window or a frame-rate cap.
func runHeadless(ctx context.Context, sess *session.Session, frames int, log *slog.Logger) error {
	rec := render.NewRecorder(render.WithLogger(log), render.WithLogOperations(false))

	for i := 0; i < frames; i++ {
		if ctx.Err() != nil {
			log.Info("headless run interrupted", "frame", i, "reason", context.Cause(ctx))
			break
		}
		sess.Frame(sess.Autopilot())
		if err := sess.Render(rec); err != nil {
			return fmt.Errorf("headless frontend: %w", err)
		}
	}

	log.Info("headless run finished",
		"frames", rec.Frames(),
		"ticks", sess.State.Ticks,
		"ball_x", sess.State.Ball.Pos.X,
		"ball_y", sess.State.Ball.Pos.Y,
		"operations", len(rec.Operations()))
	return nil
}
