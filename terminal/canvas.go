// Package terminal runs the game in a text terminal using tcell. The arena
// is scaled down to the terminal's cell grid.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const fillRune = '█'

// Canvas maps arena pixel rectangles onto terminal cells. A cell is lit
// when any part of a filled rectangle falls inside it.
type Canvas struct {
	screen       tcell.Screen
	arenaWidth   float64
	arenaHeight  float64
	bg           tcell.Color
	currentColor tcell.Color
}

// NewCanvas returns a Canvas that draws an arenaWidth x arenaHeight
// arena onto screen.
func NewCanvas(screen tcell.Screen, arenaWidth, arenaHeight float64) *Canvas {
	return &Canvas{
		screen:       screen,
		arenaWidth:   arenaWidth,
		arenaHeight:  arenaHeight,
		bg:           tcell.ColorBlack,
		currentColor: tcell.ColorWhite,
	}
}

func (c *Canvas) SetColor(clr color.Color) {
	c.currentColor = toTcellColor(clr)
}

func (c *Canvas) FillRect(x, y, width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	cols, rows := c.screen.Size()
	toCol := func(px int) float64 { return float64(px) * float64(cols) / c.arenaWidth }
	toRow := func(px int) float64 { return float64(px) * float64(rows) / c.arenaHeight }

	x0 := clampInt(int(math.Floor(toCol(x))), 0, cols)
	x1 := clampInt(int(math.Ceil(toCol(x+width))), 0, cols)
	y0 := clampInt(int(math.Floor(toRow(y))), 0, rows)
	y1 := clampInt(int(math.Ceil(toRow(y+height))), 0, rows)

	style := tcell.StyleDefault.Foreground(c.currentColor).Background(c.bg)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetContent(cx, cy, fillRune, nil, style)
		}
	}
	return nil
}

// Clear blanks every cell using the current color as background.
func (c *Canvas) Clear() error {
	c.bg = c.currentColor
	c.screen.Fill(' ', tcell.StyleDefault.Background(c.bg))
	return nil
}

func (c *Canvas) Present() error {
	c.screen.Show()
	return nil
}

// ArenaY converts a terminal row into an arena y coordinate at the
// middle of that row.
func (c *Canvas) ArenaY(row int) float64 {
	_, rows := c.screen.Size()
	if rows == 0 {
		return 0
	}
	return (float64(row) + 0.5) * c.arenaHeight / float64(rows)
}

func toTcellColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
