package game

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/OpticalFlyer/pong/geom"
)

// Config holds the fixed constants of a game. It is built once at
// startup and shared read-only by the State created from it.
type Config struct {
	ArenaWidth      float64
	ArenaHeight     float64
	BorderThickness float64

	BallRadius   float64
	BallVelocity geom.Point // initial velocity, pixels per tick

	PaddleWidth  float64
	PaddleLength float64

	// HitMultiplier scales both velocity components on every paddle return.
	HitMultiplier float64

	// ScorePixelSize is the edge of one bitmap font cell in pixels.
	ScorePixelSize int

	Background color.Color
	Foreground color.Color
}

// DefaultConfig returns the standard 1200x600 arena.
func DefaultConfig() *Config {
	return &Config{
		ArenaWidth:      1200,
		ArenaHeight:     600,
		BorderThickness: 20,
		BallRadius:      20,
		BallVelocity:    geom.Pt(-5, 1),
		PaddleWidth:     20,
		PaddleLength:    100,
		HitMultiplier:   1.1,
		ScorePixelSize:  5,
		Background:      colornames.Black,
		Foreground:      colornames.White,
	}
}

// Center returns the middle of the arena.
func (c *Config) Center() geom.Point {
	return geom.Pt(c.ArenaWidth/2, c.ArenaHeight/2)
}
