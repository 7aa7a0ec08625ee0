package ui

// StackLayout places children in a single column below the title bar.
type StackLayout struct {
	Padding float64
	Spacing float64
}

func (l StackLayout) ArrangeChildren(container Container) {
	y := titleBarHeight + l.Padding
	for _, child := range container.Children() {
		child.SetPosition(l.Padding, y)
		y += child.Bounds().Height + l.Spacing
	}
}
