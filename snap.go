package bezier

import "math"

// Proximity queries test anchors and handles against an axis-aligned box of
// half-width d around the query point, and the curve against a circle of
// radius d. When several anchors or handles qualify, the one with the highest
// index wins.

// NearestAnchorWithin returns the anchor near p. The anchor with index
// exclude is skipped; pass -1 to consider all anchors.
func (c *Curve) NearestAnchorWithin(p Point, d float64, exclude int) (Point, int, bool) {
	for i := len(c.anchors) - 1; i >= 0; i-- {
		if i == exclude {
			continue
		}
		if c.anchors[i].Near(p, d) {
			return c.anchors[i], i, true
		}
	}
	return Point{}, -1, false
}

// NearestHandleWithin returns the handle near p.
func (c *Curve) NearestHandleWithin(p Point, d float64) (Point, int, bool) {
	for i := len(c.handles) - 1; i >= 0; i-- {
		if c.handles[i].Near(p, d) {
			return c.handles[i], i, true
		}
	}
	return Point{}, -1, false
}

// NearestPointOnCurveWithin returns the point of the sample polyline closest
// to p and the index of the sample that ends the edge it lies on. That index
// is suitable for [Curve.InsertAnchor] and [Curve.SplitAt]. Curves with fewer
// than two anchors have no edges and never match.
func (c *Curve) NearestPointOnCurveWithin(p Point, d float64) (Point, int, bool) {
	if len(c.anchors) < 2 {
		return Point{}, -1, false
	}
	pt, after, distSq := c.closestEdge(p)
	if math.Sqrt(distSq) >= d {
		return Point{}, -1, false
	}
	return pt, after, true
}

// NearestToStartAnchorWithin reports whether p is near the first anchor.
func (c *Curve) NearestToStartAnchorWithin(p Point, d float64) (Point, int, bool) {
	if len(c.anchors) == 0 || !c.anchors[0].Near(p, d) {
		return Point{}, -1, false
	}
	return c.anchors[0], 0, true
}

// closestEdge finds the edge of the sample polyline closest to p. It returns
// the closest point, the index of the edge's end sample and the squared
// distance. The first of several equally close edges wins. The curve must
// have at least two samples.
func (c *Curve) closestEdge(p Point) (Point, int, float64) {
	best := math.Inf(1)
	var bestPt Point
	after := -1
	for i := 1; i < len(c.samples); i++ {
		l := Line{c.samples[i-1], c.samples[i]}
		distSq, t := l.Nearest(p)
		if distSq < best {
			best, bestPt, after = distSq, l.Eval(t), i
		}
	}
	return bestPt, after, best
}
