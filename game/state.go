// Package game implements the Pong simulation: a ball bouncing inside a
// three-sided arena and off a single pointer-controlled paddle.
package game

import (
	"math"

	"github.com/OpticalFlyer/pong/geom"
)

// Border indices into State.Borders.
const (
	BorderTop = iota
	BorderLeft
	BorderBottom
)

// State is the whole game. The right side of the arena is open: a ball
// that misses the paddle keeps travelling right and nothing resets it.
type State struct {
	Ball    Ball
	Paddle  Paddle
	Borders [3]Border
	Ticks   int // successful paddle returns

	cfg *Config
}

// New creates a game with the ball at the arena center and the paddle
// centered on the right edge.
func New(cfg *Config) *State {
	w, h, b := cfg.ArenaWidth, cfg.ArenaHeight, cfg.BorderThickness

	return &State{
		Ball:   newBall(cfg),
		Paddle: newPaddle(cfg),
		Borders: [3]Border{
			BorderTop:    {geom.Rect(geom.Pt(0, 0), geom.Pt(w, b))},
			BorderLeft:   {geom.Rect(geom.Pt(0, 0), geom.Pt(b, h))},
			BorderBottom: {geom.Rect(geom.Pt(0, h-b), geom.Pt(w, h))},
		},
		cfg: cfg,
	}
}

// Config returns the constants the game was created with.
func (s *State) Config() *Config {
	return s.cfg
}

// Arena returns the full arena rectangle, borders included.
func (s *State) Arena() geom.Rectangle {
	return geom.Rect(geom.Pt(0, 0), geom.Pt(s.cfg.ArenaWidth, s.cfg.ArenaHeight))
}

// Reset puts a fresh ball in the center and zeroes the tick counter.
// The paddle keeps its position.
func (s *State) Reset() {
	s.Ball = newBall(s.cfg)
	s.Ticks = 0
}

// Update advances the game by one frame. The paddle moves first so the
// collision test sees its current position.
func (s *State) Update(pointerY float64) {
	s.Paddle.Update(pointerY, s.cfg)
	s.UpdateBall()
}

// UpdateBall advances the ball by one tick and resolves collisions with
// the borders and the paddle.
func (s *State) UpdateBall() {
	ball := &s.Ball
	border := s.cfg.BorderThickness
	bottom := s.cfg.ArenaHeight - border

	old := ball.Pos
	ball.Pos = ball.Pos.Add(ball.Speed)

	// Each overshoot is pushed back by exactly its depth.
	if ball.Pos.X-ball.Size < border {
		ball.Pos.X += border - (ball.Pos.X - ball.Size)
		ball.Speed.X = -ball.Speed.X
	}
	if ball.Pos.Y-ball.Size < border {
		ball.Pos.Y += border - (ball.Pos.Y - ball.Size)
		ball.Speed.Y = -ball.Speed.Y
	}
	if ball.Pos.Y+ball.Size > bottom {
		ball.Pos.Y -= (ball.Pos.Y + ball.Size) - bottom
		ball.Speed.Y = -ball.Speed.Y
	}

	if s.crossedPaddle(old) {
		edge := s.Paddle.FrontEdge()
		ball.Pos.X -= ball.Pos.X - edge
		ball.Speed.X = -ball.Speed.X
		s.Ticks++
		ball.Speed = ball.Speed.Scale(s.cfg.HitMultiplier)
	}
}

// crossedPaddle reports whether the ball's leading edge passed the
// paddle face during the last tick while vertically overlapping it.
// A ball already past the face before the tick never counts.
func (s *State) crossedPaddle(old geom.Point) bool {
	ball, paddle := &s.Ball, &s.Paddle
	edge := paddle.FrontEdge()

	if old.X+ball.Size > edge || ball.Pos.X+ball.Size <= edge {
		return false
	}
	return math.Abs(ball.Pos.Y-paddle.Pos.Y) <= paddle.Length/2+ball.Size
}
