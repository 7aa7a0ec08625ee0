package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/pong/session"
)

// FrameInterval is the pause between frames.
const FrameInterval = 10 * time.Millisecond

// Run plays the game on an initialized screen until the player quits or
// ctx is done. The caller owns the screen and must call Fini.
func Run(ctx context.Context, screen tcell.Screen, sess *session.Session, log *slog.Logger) error {
	cfg := sess.State.Config()
	canvas := NewCanvas(screen, cfg.ArenaWidth, cfg.ArenaHeight)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	pointerY := cfg.ArenaHeight / 2
	log.Info("terminal frontend started")

	for {
		select {
		case <-ctx.Done():
			log.Info("terminal frontend stopped", "reason", ctx.Err())
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					log.Info("quit requested")
					return nil
				}
				if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') {
					sess.Restart()
				}
			case *tcell.EventMouse:
				_, row := ev.Position()
				pointerY = canvas.ArenaY(row)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			sess.Frame(pointerY)
			if err := sess.Render(canvas); err != nil {
				return fmt.Errorf("terminal frontend: %w", err)
			}
		}
	}
}
