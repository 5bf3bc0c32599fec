package bezier

import "fmt"

// SolveMode selects which interior samples anchor the back-solve in
// [SolveControlPoints].
type SolveMode int

const (
	// SolveA uses the samples at 1/n and 2/n from the start of the window.
	SolveA SolveMode = iota + 1
	// SolveB uses the samples at (n-1)/n and (n-2)/n, i.e. the two samples
	// just before the end of the window.
	SolveB
)

func (m SolveMode) String() string {
	switch m {
	case SolveA:
		return "A"
	case SolveB:
		return "B"
	default:
		return fmt.Sprintf("SolveMode(%d)", int(m))
	}
}

// SolveControlPoints recovers the two control points of the cubic segment
// that produced points, a window of n+1 samples taken at t = k/n. The first
// and last sample are the segment's endpoints; the mode picks the two interior
// samples that are plugged into the cubic blend to form a 2×2 linear system.
//
// The system's determinant is 9·t1·t2·(1−t1)·(1−t2)·(t2−t1), which depends
// only on n and is non-zero for n ≥ 3. Fewer than four points panic; callers
// must fall back to straight handles themselves.
func SolveControlPoints(points []Point, mode SolveMode) (start, c0, end, c1 Point) {
	if len(points) < 4 {
		panic(fmt.Sprintf("bezier: SolveControlPoints needs at least 4 samples, got %d", len(points)))
	}
	n := len(points) - 1
	start, end = points[0], points[n]

	var t1, t2 float64
	var s1, s2 Point
	switch mode {
	case SolveA:
		t1, s1 = 1.0/float64(n), points[1]
		t2, s2 = 2.0/float64(n), points[2]
	case SolveB:
		t1, s1 = float64(n-1)/float64(n), points[n-1]
		t2, s2 = float64(n-2)/float64(n), points[n-2]
	default:
		panic(fmt.Sprintf("bezier: invalid solve mode %v", mode))
	}

	// s = (1-t)³·start + 3t(1-t)²·c0 + 3t²(1-t)·c1 + t³·end, written for both
	// samples as aa·c0 + bb·c1 = -cc and dd·c0 + ee·c1 = -ff.
	aa := 3 * t1 * (1 - t1) * (1 - t1)
	bb := 3 * t1 * t1 * (1 - t1)
	dd := 3 * t2 * (1 - t2) * (1 - t2)
	ee := 3 * t2 * t2 * (1 - t2)
	det := aa*ee - bb*dd

	solve := func(ps, pe, p1, p2 float64) (float64, float64) {
		cc := ps*(1-t1)*(1-t1)*(1-t1) + pe*t1*t1*t1 - p1
		ff := ps*(1-t2)*(1-t2)*(1-t2) + pe*t2*t2*t2 - p2
		return (bb*ff - cc*ee) / det, (cc*dd - aa*ff) / det
	}
	c0.X, c1.X = solve(start.X, end.X, s1.X, s2.X)
	c0.Y, c1.Y = solve(start.Y, end.Y, s1.Y, s2.Y)
	return start, c0, end, c1
}
