package game

import (
	"errors"
	"image/color"
)

type fillOp struct {
	x, y, w, h int
	clr        color.Color
}

// fakeCanvas records fills and can be told to fail after a number of them.
type fakeCanvas struct {
	clr       color.Color
	fills     []fillOp
	clears    []color.Color
	presents  int
	failAfter int // 0 disables
}

var errCanvas = errors.New("canvas failure")

func (f *fakeCanvas) SetColor(clr color.Color) {
	f.clr = clr
}

func (f *fakeCanvas) FillRect(x, y, w, h int) error {
	if f.failAfter > 0 && len(f.fills) >= f.failAfter {
		return errCanvas
	}
	f.fills = append(f.fills, fillOp{x, y, w, h, f.clr})
	return nil
}

func (f *fakeCanvas) Clear() error {
	f.clears = append(f.clears, f.clr)
	f.fills = f.fills[:0]
	return nil
}

func (f *fakeCanvas) Present() error {
	f.presents++
	return nil
}

// lit reports whether some fill covers pixel (x, y).
func (f *fakeCanvas) lit(x, y int) bool {
	for _, op := range f.fills {
		if x >= op.x && x < op.x+op.w && y >= op.y && y < op.y+op.h {
			return true
		}
	}
	return false
}
