package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Controller owns the overlay panels drawn on top of the arena.
type Controller struct {
	panels []*Panel
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) AddPanel(panel *Panel) {
	c.panels = append(c.panels, panel)
}

// Update feeds the current pointer state to every panel.
func (c *Controller) Update() error {
	for _, p := range c.panels {
		if err := p.Update(); err != nil {
			return fmt.Errorf("updating panel %q: %w", p.Title, err)
		}
	}
	return nil
}

// Draw draws panels in the order they were added.
func (c *Controller) Draw(screen *ebiten.Image) {
	for _, p := range c.panels {
		p.Draw(screen)
	}
}

// UpdateWindowSize keeps every panel inside a width x height window.
func (c *Controller) UpdateWindowSize(width, height int) {
	for _, p := range c.panels {
		p.UpdateWindowSize(width, height)
	}
}

// ShowDebugInfo prints frame timing followed by extra near the
// bottom-left corner.
func (c *Controller) ShowDebugInfo(screen *ebiten.Image, extra string) {
	msg := fmt.Sprintf("FPS: %.2f TPS: %.2f\n%s", ebiten.ActualFPS(), ebiten.ActualTPS(), extra)
	ebitenutil.DebugPrintAt(screen, msg, 30, screen.Bounds().Dy()-60)
}

// IsInteractingWithUI reports whether a panel is being dragged.
func (c *Controller) IsInteractingWithUI() bool {
	for _, p := range c.panels {
		if p.IsDragging() {
			return true
		}
	}
	return false
}
