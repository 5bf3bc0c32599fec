package bezier

// Line is a straight segment between two points. Edges of the sample
// polyline are lines.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the closest point on the
// line, and that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Cubic returns the line as a cubic whose handles rest on its endpoints.
func (l Line) Cubic() CubicBez {
	return straightCubic(l.P0, l.P1)
}
