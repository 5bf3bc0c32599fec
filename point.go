package bezier

import (
	"fmt"
	"math"
)

// Point is a position in model space. Anchors, handles and samples are all
// points.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Reflect mirrors pt through the center c.
func (pt Point) Reflect(c Point) Point {
	return Point{
		X: 2*c.X - pt.X,
		Y: 2*c.Y - pt.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Near reports whether o lies in the axis-aligned box of half-width d around
// pt. Snapping uses this rather than a circular test.
func (pt Point) Near(o Point, d float64) bool {
	return pt.X-d <= o.X && o.X <= pt.X+d &&
		pt.Y-d <= o.Y && o.Y <= pt.Y+d
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
