package bezier

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// curveState is a deep copy of a curve's three sequences.
type curveState struct {
	Anchors []Point
	Handles []Point
	Samples []Point
}

func stateOf(c *Curve) curveState {
	return curveState{
		Anchors: c.Anchors(),
		Handles: c.Handles(),
		Samples: slices.Clone(c.Polyline()),
	}
}

// newTestCurve appends anchors and then sets handles, if any are given.
func newTestCurve(interp int, anchors []Point, handles []Point) *Curve {
	c := New(WithInterpolation(interp))
	for _, a := range anchors {
		c.AddAnchor(-1, a)
	}
	for i, h := range handles {
		c.MoveHandle(i, h)
	}
	return c
}

// wavyCurve returns a three segment curve with distinct handles everywhere.
func wavyCurve(interp int) *Curve {
	return newTestCurve(interp,
		[]Point{Pt(0, 0), Pt(30, 10), Pt(60, -5), Pt(90, 20)},
		[]Point{
			Pt(-5, -5), Pt(10, 20),
			Pt(20, 15), Pt(40, 5),
			Pt(50, -15), Pt(70, 5),
			Pt(80, 25), Pt(95, 15),
		})
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
