package vmath

// Rect is an axis-aligned box with inclusive bounds
type Rect struct {
	Min, Max Vec2
}

// RectXYWH builds a rect from its bottom-left corner and size
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, Max: Vec2{X: x + w, Y: y + h}}
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
