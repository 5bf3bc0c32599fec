package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// straightCurve returns a curve along the x axis with handles at thirds, so
// its samples are evenly spaced.
func straightCurve(anchors ...float64) *Curve {
	var as, hs []Point
	for i, x := range anchors {
		as = append(as, Pt(x, 0))
		in, out := x, x
		if i > 0 {
			in = x - (x-anchors[i-1])/3
		}
		if i < len(anchors)-1 {
			out = x + (anchors[i+1]-x)/3
		}
		hs = append(hs, Pt(in, 0), Pt(out, 0))
	}
	return newTestCurve(10, as, hs)
}

// strokeLine returns n+1 points from p to q.
func strokeLine(p, q Point, n int) []Point {
	out := make([]Point, 0, n+1)
	for i := range n + 1 {
		out = append(out, p.Lerp(q, float64(i)/float64(n)))
	}
	return out
}

func lastAnchor(c *Curve) Point { return c.Anchor(c.AnchorCount() - 1) }

func TestMergeExtend(t *testing.T) {
	c := straightCurve(0, 100)
	s := NewSession(c)
	before := stateOf(c)
	stroke := strokeLine(Pt(50, 0.5), Pt(150, 50.5), 20)
	s.MergeStroke(stroke, 5, false)

	checkCurve(t, c)
	diff(t, Pt(0, 0), c.Anchor(0))
	diff(t, stroke[len(stroke)-1], lastAnchor(c), cmpopts.EquateApprox(0, 1e-9))
	var end EndMergeCommand
	for cmd := range s.History() {
		if e, ok := cmd.(EndMergeCommand); ok {
			end = e
		}
	}
	if end.Reversed {
		t.Error("merge along the curve ran reversed")
	}

	if depth := s.Undo(); depth != 0 {
		t.Errorf("got depth %d after undo, want 0", depth)
	}
	diff(t, before, stateOf(c))
}

func TestMergeReversed(t *testing.T) {
	c := straightCurve(0, 100)
	s := NewSession(c)
	before := stateOf(c)
	stroke := strokeLine(Pt(50, 0.5), Pt(-50, 50.5), 20)
	s.MergeStroke(stroke, 5, false)

	checkCurve(t, c)
	// The stroke replaced the start of the curve; its direction is kept.
	diff(t, Pt(100, 0), lastAnchor(c))
	diff(t, stroke[len(stroke)-1], c.Anchor(0), cmpopts.EquateApprox(0, 1e-9))
	var cmds []Command
	for cmd := range s.History() {
		cmds = append(cmds, cmd)
	}
	diff(t, EndMergeCommand{Reversed: true}, cmds[len(cmds)-1])

	if depth := s.Undo(); depth != 0 {
		t.Errorf("got depth %d after undo, want 0", depth)
	}
	diff(t, before, stateOf(c))
}

func TestMergeSpan(t *testing.T) {
	c := straightCurve(0, 50, 100)
	s := NewSession(c)
	before := stateOf(c)
	var stroke []Point
	for i := range 21 {
		stroke = append(stroke, Pt(25+2.5*float64(i), 20*math.Sin(math.Pi*float64(i)/20)))
	}
	s.MergeStroke(stroke, 5, false)

	checkCurve(t, c)
	diff(t, Pt(0, 0), c.Anchor(0))
	diff(t, Pt(100, 0), lastAnchor(c))
	top := math.Inf(-1)
	for _, p := range c.Polyline() {
		top = max(top, p.Y)
	}
	if top < 15 {
		t.Errorf("curve peaks at %g, want the stroke's bulge", top)
	}
	// The span is refitted up to the far anchor but keeps hugging the axis
	// past the stroke's end.
	pl := c.Polyline()
	for _, p := range pl[len(pl)-3:] {
		if p.X < 75 || math.Abs(p.Y) > 3 {
			t.Errorf("tail sample %v strayed", p)
		}
	}

	s.Undo()
	diff(t, before, stateOf(c))
}

func TestMergeSnapToStart(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		c := straightCurve(0, 100)
		s := NewSession(c)
		before := stateOf(c)
		end := Pt(150, 50.5)
		if reversed {
			end = Pt(-50, 50.5)
		}
		s.MergeStroke(strokeLine(Pt(50, 0.5), end, 20), 5, true)
		checkCurve(t, c)
		diff(t, c.Anchor(0), lastAnchor(c))
		pl := c.Polyline()
		diff(t, pl[0], pl[len(pl)-1])

		if depth := s.Undo(); depth != 0 {
			t.Errorf("reversed %t: got depth %d after undo, want 0", reversed, depth)
		}
		diff(t, before, stateOf(c))
	}
}

func TestMergeSeed(t *testing.T) {
	stroke := strokeLine(Pt(0, 0), Pt(40, 30), 12)
	approx := cmpopts.EquateApprox(0, 1e-9)

	t.Run("click on empty", func(t *testing.T) {
		s := NewSession(New())
		s.MergeStroke(stroke[:1], 5, false)
		diff(t, []Point{stroke[0]}, s.Curve().Anchors())
		s.Undo()
		if n := s.Curve().AnchorCount(); n != 0 {
			t.Errorf("got %d anchors after undo", n)
		}
	})

	t.Run("click on anchor", func(t *testing.T) {
		c := FromPoint(Pt(5, 5))
		c.MoveHandle(1, Pt(9, 5))
		s := NewSession(c)
		before := stateOf(c)
		s.MergeStroke([]Point{Pt(7, 7), Pt(7, 8)}, 5, false)
		diff(t, curveState{
			Anchors: []Point{Pt(7, 7)},
			Handles: []Point{Pt(7, 7), Pt(7, 7)},
			Samples: []Point{Pt(7, 7)},
		}, stateOf(c))
		s.Undo()
		diff(t, before, stateOf(c))
	})

	t.Run("stroke on empty", func(t *testing.T) {
		c := New()
		s := NewSession(c)
		s.MergeStroke(stroke, 5, false)
		if c.AnchorCount() < 2 {
			t.Fatalf("got %d anchors", c.AnchorCount())
		}
		checkCurve(t, c)
		diff(t, stroke[0], c.Anchor(0), approx)
		diff(t, stroke[len(stroke)-1], lastAnchor(c), approx)
		if depth := s.Undo(); depth != 0 {
			t.Errorf("got depth %d after undo, want 0", depth)
		}
		diff(t, curveState{}, stateOf(c), cmpopts.EquateEmpty())
	})

	t.Run("stroke replaces fresh anchor", func(t *testing.T) {
		c := FromPoint(Pt(-20, -20))
		s := NewSession(c)
		before := stateOf(c)
		s.MergeStroke(stroke, 5, false)
		checkCurve(t, c)
		diff(t, stroke[0], c.Anchor(0), approx)
		s.Undo()
		diff(t, before, stateOf(c))
	})

	t.Run("stroke extends anchor", func(t *testing.T) {
		c := New()
		s := NewSession(c)
		s.AddAnchor(0, Pt(-20, -20))
		before := stateOf(c)
		s.MergeStroke(stroke, 5, false)
		checkCurve(t, c)
		diff(t, Pt(-20, -20), c.Anchor(0))
		diff(t, stroke[len(stroke)-1], lastAnchor(c), approx)
		if depth := s.Undo(); depth != 1 {
			t.Errorf("got depth %d after undo, want 1", depth)
		}
		diff(t, before, stateOf(c))
	})
}

func TestMergeIgnoresDegenerateStrokes(t *testing.T) {
	c := straightCurve(0, 100)
	s := NewSession(c)
	before := stateOf(c)
	s.MergeStroke(nil, 5, false)
	s.MergeStroke([]Point{Pt(50, 1)}, 5, false)
	if s.Depth() != 0 {
		t.Errorf("got depth %d", s.Depth())
	}
	diff(t, before, stateOf(c))
}
