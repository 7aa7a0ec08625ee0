package ui

import "github.com/hajimehoshi/ebiten/v2"

var _ Component = (*Label)(nil)

// Label shows a line of text produced by a callback on every draw.
type Label struct {
	x, y   float64
	text   func() string
	parent Container
}

func NewLabel(text func() string) *Label {
	return &Label{text: text}
}

func (l *Label) SetParent(parent Container) {
	l.parent = parent
}

func (l *Label) GetParent() Container {
	return l.parent
}

func (l *Label) SetPosition(x, y float64) {
	l.x, l.y = x, y
}

func (l *Label) Text() string {
	return l.text()
}

func (l *Label) Update() error {
	return nil
}

func (l *Label) Draw(screen *ebiten.Image) {
	x, y := absolute(l, l.x, l.y)
	drawText(screen, l.text(), x, y)
}

func (l *Label) HandleInput(x, y float64, pressed bool) bool {
	return false
}

func (l *Label) Bounds() Rectangle {
	return Rectangle{X: l.x, Y: l.y, Width: 100, Height: 13}
}
