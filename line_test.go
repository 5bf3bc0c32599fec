package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	if d := math.Abs(l.Length() - math.Sqrt(2.0)); d > 1e-12 {
		t.Errorf("%g > 1e-12", d)
	}
	diff(t, Pt(0.5, 0.5), l.Eval(0.5))
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	tests := []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(5, 3), 9, 0.5},
		{Pt(-3, 4), 25, 0},
		{Pt(13, -4), 25, 1},
		{Pt(2.5, 0), 0, 0.25},
	}
	for _, tt := range tests {
		distSq, tt2 := l.Nearest(tt.pt)
		diff(t, []float64{tt.distSq, tt.t}, []float64{distSq, tt2}, cmpopts.EquateApprox(0, 1e-12))
	}

	// A degenerate line collapses to its start.
	distSq, at := Line{Pt(1, 1), Pt(1, 1)}.Nearest(Pt(4, 5))
	if distSq != 25 || at != 0 {
		t.Errorf("got %g at %g, want 25 at 0", distSq, at)
	}
}

func TestLineCubic(t *testing.T) {
	c := Line{Pt(0, 0), Pt(9, 3)}.Cubic()
	for _, s := range c.Sample(6) {
		if d := math.Abs(s.Y - s.X/3); d > 1e-12 {
			t.Errorf("sample %v is off the line", s)
		}
	}
}
