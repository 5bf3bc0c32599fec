package bezier

import "fmt"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%s, %s}", r.Origin(), Pt(r.X1, r.Y1))
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Origin returns the origin of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Union returns the smallest rectangle enclosing both rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate returns a rectangle grown by width on the left and right and by
// height on the top and bottom.
func (r Rect) Inflate(width, height float64) Rect {
	r = r.Abs()
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Contains reports whether pt lies in the rectangle, edges included.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X <= r.X1 && pt.Y >= r.Y0 && pt.Y <= r.Y1
}

// BoundingBox returns the extents of the sample polyline. The result for an
// empty curve is the zero rectangle.
func (c *Curve) BoundingBox() Rect {
	if len(c.samples) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(c.samples[0], c.samples[0])
	for _, p := range c.samples[1:] {
		r = r.UnionPoint(p)
	}
	return r
}

// ControlBox returns the extents of the anchors and handles. It encloses the
// curve and is what an editor must redraw when the curve's handles are shown.
func (c *Curve) ControlBox() Rect {
	if len(c.anchors) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(c.anchors[0], c.anchors[0])
	for _, p := range c.anchors[1:] {
		r = r.UnionPoint(p)
	}
	for _, p := range c.handles {
		r = r.UnionPoint(p)
	}
	return r
}
