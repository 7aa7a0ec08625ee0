package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ Component = (*Button)(nil)

// Button is an outlined push button. It fires when the pointer is released
// over it while it is armed.
type Button struct {
	x, y          float64
	width, height float64
	label         string
	onClick       func()
	parent        Container

	hovered bool
	armed   bool
}

// NewButton creates a button that calls onClick when released over it.
func NewButton(label string, onClick func()) *Button {
	return &Button{
		width:   100,
		height:  24,
		label:   label,
		onClick: onClick,
	}
}

func (b *Button) SetParent(parent Container) { b.parent = parent }
func (b *Button) GetParent() Container       { return b.parent }
func (b *Button) SetPosition(x, y float64)   { b.x, b.y = x, y }
func (b *Button) Update() error              { return nil }

func (b *Button) Draw(screen *ebiten.Image) {
	x, y := absolute(b, b.x, b.y)
	fx, fy := float32(x), float32(y)
	w, h := float32(b.width), float32(b.height)

	// Armed buttons are drawn inverted, hovered ones get a thicker outline
	if b.armed {
		vector.DrawFilledRect(screen, fx, fy, w, h, color.White, false)
		drawTextColor(screen, b.label, x+8, y+5, color.Black)
		return
	}
	stroke := float32(1)
	if b.hovered {
		stroke = 2
	}
	vector.DrawFilledRect(screen, fx, fy, w, h, color.Black, false)
	vector.StrokeRect(screen, fx, fy, w, h, stroke, color.White, false)
	drawText(screen, b.label, x+8, y+5)
}

func (b *Button) HandleInput(x, y float64, pressed bool) bool {
	if !b.Bounds().Contains(x, y) {
		b.hovered, b.armed = false, false
		return false
	}

	b.hovered = true
	switch {
	case pressed:
		b.armed = true
	case b.armed:
		b.armed = false
		if b.onClick != nil {
			b.onClick()
		}
	}
	return true
}

func (b *Button) Bounds() Rectangle {
	return Rectangle{X: b.x, Y: b.y, Width: b.width, Height: b.height}
}
