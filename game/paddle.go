package game

import "github.com/OpticalFlyer/pong/geom"

// Paddle is the player's bat. Only Pos.Y changes during a game.
type Paddle struct {
	Pos    geom.Point // center
	Width  float64
	Length float64
}

func newPaddle(cfg *Config) Paddle {
	return Paddle{
		Pos:    geom.Pt(cfg.ArenaWidth-cfg.PaddleWidth/2, cfg.ArenaHeight/2),
		Width:  cfg.PaddleWidth,
		Length: cfg.PaddleLength,
	}
}

// Update moves the paddle center to pointerY, clamped so the whole paddle
// stays between the top and bottom borders.
func (p *Paddle) Update(pointerY float64, cfg *Config) {
	minY := cfg.BorderThickness + p.Length/2
	maxY := cfg.ArenaHeight - cfg.BorderThickness - p.Length/2

	if pointerY < minY {
		p.Pos.Y = minY
	} else if pointerY > maxY {
		p.Pos.Y = maxY
	} else {
		p.Pos.Y = pointerY
	}
}

// FrontEdge returns the x coordinate of the paddle face the ball hits.
func (p Paddle) FrontEdge() float64 {
	return p.Pos.X - p.Width/2
}
