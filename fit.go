package bezier

import (
	"iter"
	"log/slog"
	"math"
	"slices"
)

const (
	// maxReparamIterations bounds the Newton-Raphson reparameterization
	// rounds attempted before a range is split.
	maxReparamIterations = 20
	// maxFitDepth bounds the split recursion. Ranges still out of tolerance at
	// this depth are emitted as they are.
	maxFitDepth = 32
)

// ScaleTolerance converts a view scale (the denominator of 1:scale) into a
// fitting tolerance. It yields the same on-screen deviation at any scale:
// 25^log₅(scale/2000), which is 1 at 1:2000.
func ScaleTolerance(scale float64) float64 {
	return math.Pow(25, math.Log(scale/2000)/math.Log(5))
}

// SnapDistance converts a view scale into the distance within which a
// freehand stroke's endpoints attach to an existing curve.
func SnapDistance(scale float64) float64 {
	return scale / 250
}

// FitPolyline fits a sequence of cubic Béziers to points. Consecutive
// segments share endpoints; the first starts at points[0] and the last ends
// at the final point.
//
// accuracy is compared against the squared distance between each input
// point and its parameterized position on the fitted cubic. A range is
// first fitted by least squares along its boundary tangents; if the error is
// below accuracy² the parameterization is refined with Newton-Raphson steps,
// and once that budget is spent the range is split at the point of maximum
// error. Recursion is bounded, so fitting always terminates.
//
// Input with fewer than two distinct points produces no segments.
func FitPolyline(points []Point, accuracy float64) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		pts := dedup(points)
		if len(pts) < 2 {
			return
		}
		left := pts[1].Sub(pts[0]).Normalize()
		right := pts[len(pts)-2].Sub(pts[len(pts)-1]).Normalize()
		fitCubicRec(pts, left, right, accuracy, 0, yield)
	}
}

// FitPolylineSlice is like [FitPolyline] but collects the segments.
func FitPolylineSlice(points []Point, accuracy float64) []CubicBez {
	return slices.Collect(FitPolyline(points, accuracy))
}

func fitCubicRec(
	points []Point,
	leftTangent Vec2,
	rightTangent Vec2,
	accuracy float64,
	depth int,
	yield func(CubicBez) bool,
) bool {
	if len(points) == 2 {
		// Heuristic: place the handles a third of the chord out along the
		// tangents.
		dist := points[0].Distance(points[1]) / 3.0
		return yield(CubicBez{
			points[0],
			points[0].Translate(leftTangent.Mul(dist)),
			points[1].Translate(rightTangent.Mul(dist)),
			points[1],
		})
	}

	u := chordLengthParameterize(points)
	c := generateBezier(points, u, leftTangent, rightTangent)
	maxErr, split := maxFitError(points, c, u)
	if maxErr < accuracy {
		return yield(c)
	}

	if maxErr < accuracy*accuracy {
		for range maxReparamIterations {
			u = reparameterize(c, points, u)
			c = generateBezier(points, u, leftTangent, rightTangent)
			maxErr, split = maxFitError(points, c, u)
			if maxErr < accuracy {
				return yield(c)
			}
		}
	}

	if depth >= maxFitDepth {
		Logger().Debug("fit depth exhausted",
			slog.Int("points", len(points)),
			slog.Float64("error", maxErr))
		return yield(c)
	}

	center := points[split-1].Sub(points[split+1]).Normalize()
	if center.IsNaN() {
		// points[split-1] == points[split+1]; use the local chord instead.
		center = points[split-1].Sub(points[split]).Normalize()
	}
	if !fitCubicRec(points[:split+1], leftTangent, center, accuracy, depth+1, yield) {
		return false
	}
	return fitCubicRec(points[split:], center.Negate(), rightTangent, accuracy, depth+1, yield)
}

// generateBezier solves for the handle lengths along the fixed tangents that
// minimize the squared distance to points at parameters u.
func generateBezier(points []Point, u []float64, leftTangent, rightTangent Vec2) CubicBez {
	first, last := points[0], points[len(points)-1]
	var c00, c01, c11, x0, x1 float64
	for i, t := range u {
		mt := 1 - t
		a0 := leftTangent.Mul(3 * mt * mt * t)
		a1 := rightTangent.Mul(3 * mt * t * t)
		c00 += a0.Dot(a0)
		c01 += a0.Dot(a1)
		c11 += a1.Dot(a1)
		tmp := points[i].Sub(CubicBez{first, first, last, last}.Eval(t))
		x0 += a0.Dot(tmp)
		x1 += a1.Dot(tmp)
	}

	det := c00*c11 - c01*c01
	var alphaL, alphaR float64
	if det != 0 {
		alphaL = (x0*c11 - x1*c01) / det
		alphaR = (c00*x1 - c01*x0) / det
	}

	// Non-positive or vanishing handle lengths mean the least squares fit is
	// unusable; fall back to a third of the chord.
	segLength := first.Distance(last)
	epsilon := 1e-6 * segLength
	if alphaL < epsilon || alphaR < epsilon {
		alphaL = segLength / 3.0
		alphaR = segLength / 3.0
	}
	return CubicBez{
		first,
		first.Translate(leftTangent.Mul(alphaL)),
		last.Translate(rightTangent.Mul(alphaR)),
		last,
	}
}

// reparameterize performs one Newton-Raphson step per point towards the
// parameter of its nearest position on c.
func reparameterize(c CubicBez, points []Point, u []float64) []float64 {
	out := make([]float64, len(u))
	for i, t := range u {
		d := c.Eval(t).Sub(points[i])
		d1 := c.Deriv(t)
		d2 := c.Deriv2(t)
		num := d.Dot(d1)
		den := d1.Hypot2() + d.Dot(d2)
		if den == 0 {
			out[i] = t
		} else {
			out[i] = t - num/den
		}
	}
	return out
}

// maxFitError returns the largest squared distance between points and c at
// parameters u, and the index where it occurs. The index is always interior
// so that splitting there makes progress.
func maxFitError(points []Point, c CubicBez, u []float64) (float64, int) {
	maxDist := 0.0
	split := len(points) / 2
	for i, t := range u {
		if d := c.Eval(t).DistanceSquared(points[i]); d > maxDist {
			maxDist = d
			split = i
		}
	}
	split = min(max(split, 1), len(points)-2)
	return maxDist, split
}

func chordLengthParameterize(points []Point) []float64 {
	u := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		u[i] = u[i-1] + points[i].Distance(points[i-1])
	}
	total := u[len(u)-1]
	for i := range u {
		u[i] /= total
	}
	return u
}

// dedup drops consecutive duplicate points, which would otherwise produce
// NaN tangents and zero-length chords.
func dedup(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}
