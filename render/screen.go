// Package render provides game.Canvas implementations for the window
// and headless frontends.
package render

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrNoTarget is returned when a Screen is drawn to before it has an image.
var ErrNoTarget = errors.New("render: screen has no target image")

// Screen draws onto an ebiten image. Ebiten presents the frame itself once
// Draw returns, so Present does nothing.
type Screen struct {
	target *ebiten.Image
	clr    color.Color
}

// NewScreen returns a Screen that draws on target.
func NewScreen(target *ebiten.Image) *Screen {
	return &Screen{target: target, clr: color.White}
}

// SetTarget swaps the image drawn on. Ebiten hands a new screen image to
// every Draw call.
func (s *Screen) SetTarget(target *ebiten.Image) {
	s.target = target
}

func (s *Screen) SetColor(clr color.Color) {
	s.clr = clr
}

func (s *Screen) FillRect(x, y, width, height int) error {
	if s.target == nil {
		return ErrNoTarget
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y),
		float32(width), float32(height), s.clr, false)
	return nil
}

func (s *Screen) Clear() error {
	if s.target == nil {
		return ErrNoTarget
	}
	s.target.Fill(s.clr)
	return nil
}

func (s *Screen) Present() error {
	return nil
}
