package game

import "github.com/OpticalFlyer/pong/geom"

// Ball is moved and reflected by State.UpdateBall; it has no behavior of
// its own.
type Ball struct {
	Pos   geom.Point
	Speed geom.Point // velocity per tick
	Size  float64    // radius
}

func newBall(cfg *Config) Ball {
	return Ball{
		Pos:   cfg.Center(),
		Speed: cfg.BallVelocity,
		Size:  cfg.BallRadius,
	}
}
