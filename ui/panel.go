package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleBarHeight = 20.0
	panelAlpha     = 200
)

var _ Container = (*Panel)(nil)

// Panel is a window-like container that can be dragged by its title bar.
// It stays inside the window.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string

	children []Component
	layout   Layout
	parent   Container

	// Interaction state
	isDragging                bool
	dragStartX                float64
	dragStartY                float64
	mouseButtonPreviouslyDown bool

	// Window dimensions
	windowWidth  int
	windowHeight int
}

func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		Title:        title,
		layout:       StackLayout{Padding: 8, Spacing: 6},
		windowWidth:  800, // Default window size
		windowHeight: 600, // Default window size
	}
}

func (p *Panel) SetParent(parent Container) {
	p.parent = parent
}

func (p *Panel) GetParent() Container {
	return p.parent
}

func (p *Panel) SetPosition(x, y float64) {
	p.X, p.Y = x, y
	p.clampToWindow()
}

func (p *Panel) AddChild(child Component) {
	child.SetParent(p)
	p.children = append(p.children, child)
	p.layout.ArrangeChildren(p)
}

func (p *Panel) RemoveChild(child Component) {
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			child.SetParent(nil)
			p.layout.ArrangeChildren(p)
			return
		}
	}
}

func (p *Panel) Children() []Component {
	return p.children
}

func (p *Panel) Layout() Layout {
	return p.layout
}

func (p *Panel) Bounds() Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Panel) UpdateWindowSize(width, height int) {
	p.windowWidth = width
	p.windowHeight = height
	p.clampToWindow()
}

// IsDragging reports whether the panel is being moved.
func (p *Panel) IsDragging() bool {
	return p.isDragging
}

func (p *Panel) updateCursor(x, y float64) {
	switch {
	case p.isDragging || p.isInTitleBar(x, y):
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func (p *Panel) Update() error {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	p.updateCursor(fx, fy)
	p.HandleInput(fx, fy, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	for _, child := range p.children {
		if err := child.Update(); err != nil {
			return err
		}
	}
	return nil
}

// HandleInput drags the panel from its title bar and forwards the pointer
// to the children in panel-local coordinates.
func (p *Panel) HandleInput(x, y float64, pressed bool) bool {
	if pressed {
		if !p.mouseButtonPreviouslyDown {
			p.mouseButtonPreviouslyDown = true
			if p.isInTitleBar(x, y) {
				p.isDragging = true
				p.dragStartX = x - p.X
				p.dragStartY = y - p.Y
			}
		}

		if p.isDragging {
			p.X = x - p.dragStartX
			p.Y = y - p.dragStartY
			p.clampToWindow()
			return true
		}
	} else {
		p.isDragging = false
		p.mouseButtonPreviouslyDown = false
	}

	used := false
	for _, child := range p.children {
		if child.HandleInput(x-p.X, y-p.Y, pressed) {
			used = true
		}
	}
	return used || p.Bounds().Contains(x, y)
}

func (p *Panel) Draw(screen *ebiten.Image) {
	bgColor := color.RGBA{100, 100, 100, panelAlpha}
	titleColor := color.RGBA{60, 60, 60, panelAlpha}

	// Draw panel background
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), bgColor, true)

	// Draw title bar
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(titleBarHeight), titleColor, true)
	drawText(screen, p.Title, p.X+6, p.Y+3)

	for _, child := range p.children {
		child.Draw(screen)
	}
}

func (p *Panel) isInTitleBar(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width &&
		y >= p.Y && y <= p.Y+titleBarHeight
}

func (p *Panel) clampToWindow() {
	p.X = max(0, min(p.X, float64(p.windowWidth)-p.Width))
	p.Y = max(0, min(p.Y, float64(p.windowHeight)-p.Height))
}
