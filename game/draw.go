package game

import (
	"fmt"
	"image/color"

	"github.com/OpticalFlyer/pong/geom"
)

// Canvas is the drawing surface a frontend provides. Coordinates are
// arena pixels. FillRect and Clear use the color last passed to SetColor.
type Canvas interface {
	SetColor(clr color.Color)
	FillRect(x, y, width, height int) error
	Clear() error
	Present() error
}

// Drawable is anything that can render itself onto a Canvas.
type Drawable interface {
	Draw(c Canvas) error
}

var (
	_ Drawable = Ball{}
	_ Drawable = Paddle{}
	_ Drawable = Border{}
	_ Drawable = (*State)(nil)
)

// Border is one of the static walls of the arena.
type Border struct {
	geom.Rectangle
}

// Draw renders the ball as a filled disk by testing every pixel of its
// bounding square against the radius.
func (b Ball) Draw(c Canvas) error {
	x0 := int(b.Pos.X)
	y0 := int(b.Pos.Y)
	size := int(b.Size)

	for i := -size; i < size; i++ {
		for j := -size; j < size; j++ {
			if i*i+j*j <= size*size {
				if err := c.FillRect(x0+i, y0+j, 1, 1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p Paddle) Draw(c Canvas) error {
	x := int(p.Pos.X - p.Width/2)
	y := int(p.Pos.Y - p.Length/2)
	return c.FillRect(x, y, int(p.Width), int(p.Length))
}

func (b Border) Draw(c Canvas) error {
	size := b.Size()
	return c.FillRect(int(b.TopLeft.X), int(b.TopLeft.Y), int(size.X), int(size.Y))
}

// Draw clears the canvas and renders every entity followed by the tick
// counter in the top-left corner. Presenting the frame is up to the caller.
func (s *State) Draw(c Canvas) error {
	c.SetColor(s.cfg.Background)
	if err := c.Clear(); err != nil {
		return fmt.Errorf("clearing canvas: %w", err)
	}
	c.SetColor(s.cfg.Foreground)

	if err := s.Ball.Draw(c); err != nil {
		return fmt.Errorf("drawing ball: %w", err)
	}
	if err := s.Paddle.Draw(c); err != nil {
		return fmt.Errorf("drawing paddle: %w", err)
	}
	for i, b := range s.Borders {
		if err := b.Draw(c); err != nil {
			return fmt.Errorf("drawing border %d: %w", i, err)
		}
	}

	offset := int(s.cfg.BorderThickness) + 1
	if err := DrawNumber(c, s.Ticks, s.cfg.ScorePixelSize, offset, offset); err != nil {
		return fmt.Errorf("drawing score: %w", err)
	}
	return nil
}
