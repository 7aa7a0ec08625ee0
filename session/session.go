// Package session drives a game.State on behalf of a frontend: it runs
// frames, restarts, renders, and logs what happens in between.
package session

import (
	"fmt"
	"log/slog"

	"github.com/OpticalFlyer/pong/game"
)

// Session wraps a State for one process lifetime.
type Session struct {
	State *game.State

	log     *slog.Logger
	frames  int
	escaped bool // ball is outside the arena
}

// New creates a Session around state. A nil logger uses slog.Default().
func New(state *game.State, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{State: state, log: log}
}

// Frame advances the game by one frame with the pointer at pointerY.
func (s *Session) Frame(pointerY float64) {
	before := s.State.Ticks
	s.State.Update(pointerY)
	s.frames++

	if s.State.Ticks > before {
		s.log.Debug("paddle hit",
			"ticks", s.State.Ticks,
			"speed_x", s.State.Ball.Speed.X,
			"speed_y", s.State.Ball.Speed.Y)
	}

	inside := s.State.Arena().Contains(s.State.Ball.Pos)
	if !inside && !s.escaped {
		s.log.Info("ball left the arena", "frame", s.frames, "ticks", s.State.Ticks)
	}
	s.escaped = !inside
}

// Restart resets the ball and the tick counter.
func (s *Session) Restart() {
	s.log.Info("game restarted", "frame", s.frames, "ticks", s.State.Ticks)
	s.State.Reset()
	s.escaped = false
}

// Render draws the current state on c and presents it.
func (s *Session) Render(c game.Canvas) error {
	if err := s.State.Draw(c); err != nil {
		return fmt.Errorf("drawing frame %d: %w", s.frames, err)
	}
	if err := c.Present(); err != nil {
		return fmt.Errorf("presenting frame %d: %w", s.frames, err)
	}
	return nil
}

// Autopilot returns a pointer position that keeps the paddle on the ball.
func (s *Session) Autopilot() float64 {
	return s.State.Ball.Pos.Y
}

// Frames returns the number of frames advanced so far.
func (s *Session) Frames() int {
	return s.frames
}

// Escaped reports whether the ball is currently outside the arena.
func (s *Session) Escaped() bool {
	return s.escaped
}
