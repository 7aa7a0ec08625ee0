package geom

// Rectangle is an axis-aligned rectangle given by two corners.
//
// TopLeft must not lie right of or below BottomRight. Rectangles are
// values and are never mutated after construction.
type Rectangle struct {
	TopLeft     Point
	BottomRight Point
}

// Rect builds a Rectangle from its top-left and bottom-right corners.
func Rect(topLeft, bottomRight Point) Rectangle {
	return Rectangle{TopLeft: topLeft, BottomRight: bottomRight}
}

// Size returns the extent of r as a vector (BottomRight - TopLeft).
func (r Rectangle) Size() Point {
	return r.BottomRight.Sub(r.TopLeft)
}

// Contains reports whether p lies inside r, edges included.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BottomRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BottomRight.Y
}
