package vmath

// Vec2 is a world-space vector, y up
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func (a Vec2) Scale(f float64) Vec2 {
	return Vec2{X: a.X * f, Y: a.Y * f}
}
