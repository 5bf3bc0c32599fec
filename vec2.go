package bezier

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Hypot())
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{X: v.X / f, Y: v.Y / f}
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}
