package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Component interface {
	Update() error
	Draw(screen *ebiten.Image)
	Bounds() Rectangle
	// HandleInput receives the pointer in the parent's coordinate space and
	// reports whether the component used it.
	HandleInput(x, y float64, pressed bool) bool
	SetPosition(x, y float64)
	SetParent(parent Container)
	GetParent() Container
}

// Container represents a Component that can hold and manage other Components.
type Container interface {
	Component
	AddChild(child Component)
	RemoveChild(child Component)
	Children() []Component
	Layout() Layout
}

// Rectangle represents the bounds of a Component
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) is inside r.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Layout defines how Components are arranged within a Container
type Layout interface {
	ArrangeChildren(container Container)
}

var (
	defaultFace = text.NewGoXFace(basicfont.Face7x13)
	textColor   = color.White
)

func drawText(screen *ebiten.Image, s string, x, y float64) {
	drawTextColor(screen, s, x, y, textColor)
}

func drawTextColor(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, defaultFace, op)
}

// absolute converts a position inside c's parent to screen coordinates.
func absolute(c Component, x, y float64) (float64, float64) {
	if parent := c.GetParent(); parent != nil {
		b := parent.Bounds()
		return x + b.X, y + b.Y
	}
	return x, y
}
