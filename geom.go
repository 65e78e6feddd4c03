package drawer

import "math"

// Point represents a 2D position.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by the vector v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Component returns the point's coordinate along the given axis.
func (p Point) Component(a Axis) float64 {
	if a == AxisHorizontal {
		return p.X
	}
	return p.Y
}

// WithComponent returns a copy of the point with the coordinate along the
// given axis replaced by v.
func (p Point) WithComponent(a Axis, v float64) Point {
	if a == AxisHorizontal {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Vec2 represents a 2D displacement vector. Unlike Point, which represents
// a position, Vec2 represents a direction and magnitude.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Component returns the vector's component along the given axis.
func (v Vec2) Component(a Axis) float64 {
	if a == AxisHorizontal {
		return v.X
	}
	return v.Y
}

// WithComponent returns a copy of the vector with the component along the
// given axis replaced by s.
func (v Vec2) WithComponent(a Axis, s float64) Vec2 {
	if a == AxisHorizontal {
		v.X = s
	} else {
		v.Y = s
	}
	return v
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// isFinite reports whether f is neither NaN nor infinite.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
