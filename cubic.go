package bezier

// CubicBez is one cubic Bézier segment. In a [Curve], P0 and P3 are anchors,
// P1 is the outgoing handle of the first anchor and P2 the incoming handle of
// the second.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the cubic at t using the Bernstein form. Eval(0) and Eval(1)
// return P0 and P3 exactly.
func (c CubicBez) Eval(t float64) Point {
	return c.blend(t, 1.0-t)
}

// blend evaluates the Bernstein form for t and mt = 1-t. The terms are
// grouped so that the reversed cubic evaluated at (mt, t) gives the same
// bits, which keeps samples identical across a flip.
func (c CubicBez) blend(t, mt float64) Point {
	b0 := mt * mt * mt
	b1 := 3.0 * (mt * mt * t)
	b2 := 3.0 * (t * t * mt)
	b3 := t * t * t
	return Point{
		X: (b0*c.P0.X + b3*c.P3.X) + (b1*c.P1.X + b2*c.P2.X),
		Y: (b0*c.P0.Y + b3*c.P3.Y) + (b1*c.P1.Y + b2*c.P2.Y),
	}
}

// sampleAt evaluates sample k of steps.
func (c CubicBez) sampleAt(k, steps int) Point {
	n := float64(steps)
	return c.blend(float64(k)/n, float64(steps-k)/n)
}

// Deriv returns the first derivative at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// Deriv2 returns the second derivative at t.
func (c CubicBez) Deriv2(t float64) Vec2 {
	a := Vec2(c.P2).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P0)).Mul(6 * (1.0 - t))
	b := Vec2(c.P3).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P1)).Mul(6 * t)
	return a.Add(b)
}

// Subsegment returns the part of the cubic between t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.Deriv(t0).Mul(scale))
	p2 := p3.Translate(c.Deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Sample returns steps+1 points of the cubic at t = k/steps, k = 0..steps.
// The first and last point are P0 and P3.
func (c CubicBez) Sample(steps int) []Point {
	return c.AppendSamples(make([]Point, 0, steps+1), steps)
}

// AppendSamples is like [CubicBez.Sample] but appends to dst.
func (c CubicBez) AppendSamples(dst []Point, steps int) []Point {
	for k := range steps + 1 {
		dst = append(dst, c.sampleAt(k, steps))
	}
	return dst
}

// sampleInto overwrites dst, which must have length steps+1, with the samples
// of c.
func (c CubicBez) sampleInto(dst []Point) {
	steps := len(dst) - 1
	for k := range dst {
		dst[k] = c.sampleAt(k, steps)
	}
}

// Evaluate evaluates the cubic blend of p1, c1, c2 and p2 at t ∈ [0, 1].
func Evaluate(p1, c1, c2, p2 Point, t float64) Point {
	return CubicBez{p1, c1, c2, p2}.Eval(t)
}

// SampleSegment returns steps+1 points of the segment from p1 to p2 with
// handles c1 and c2, both endpoints included.
//
// The argument order (p1, c1, p2, c2) pairs each anchor with its handle.
func SampleSegment(p1, c1, p2, c2 Point, steps int) []Point {
	return CubicBez{p1, c1, c2, p2}.Sample(steps)
}

// straightCubic returns the cubic from p0 to p1 with both handles resting on
// their anchors.
func straightCubic(p0, p1 Point) CubicBez {
	return CubicBez{p0, p0, p1, p1}
}
