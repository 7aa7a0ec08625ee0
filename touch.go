package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Pong) handleTouchEvents() {
	// Use AppendTouchIDs instead of TouchIDs
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)

	// Drop the driving touch once its finger is lifted
	if g.touchTracking && !containsTouchID(touches, g.activeTouch) {
		g.touchTracking = false
	}
	if !g.touchTracking && len(touches) > 0 {
		g.activeTouch = touches[0]
		g.touchTracking = true
	}

	if g.touchTracking {
		_, y := ebiten.TouchPosition(g.activeTouch)
		g.pointerY = float64(y)
	}

	// A second finger tapping restarts the game
	justPressed := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touches) >= 2 && len(justPressed) > 0 && !containsTouchID(justPressed, g.activeTouch) {
		g.session.Restart()
	}
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
