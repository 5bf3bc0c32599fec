package bezier

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		if l := c.Deriv(ts).Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}

		d1 := c.Deriv(ts + delta)
		d2Approx := d1.Sub(c.Deriv(ts)).Mul(1.0 / delta)
		if l := c.Deriv2(ts).Sub(d2Approx).Hypot(); l >= 1e-4 {
			t.Errorf("got second derivative difference of %g", l)
		}
	}
}

func TestEvaluateEndpoints(t *testing.T) {
	pts := []Point{
		Pt(0, 0), Pt(1e-9, -3), Pt(123.456, 7.89), Pt(-1e6, 2.5e5), Pt(0.1, 0.2), Pt(1.0/3.0, 2.0/3.0),
	}
	for _, p1 := range pts {
		for _, p2 := range pts {
			c1, c2 := Pt(17.25, -3.5), Pt(-8.125, 99)
			if got := Evaluate(p1, c1, c2, p2, 0); got != p1 {
				t.Errorf("Evaluate(t=0) = %v, want %v", got, p1)
			}
			if got := Evaluate(p1, c1, c2, p2, 1); got != p2 {
				t.Errorf("Evaluate(t=1) = %v, want %v", got, p2)
			}
		}
	}
}

func TestSampleSegment(t *testing.T) {
	p1, c1, c2, p2 := Pt(0, 0), Pt(5, 20), Pt(15, -20), Pt(20, 0)
	const steps = 8
	got := SampleSegment(p1, c1, p2, c2, steps)
	if len(got) != steps+1 {
		t.Fatalf("got %d samples, want %d", len(got), steps+1)
	}
	if got[0] != p1 || got[steps] != p2 {
		t.Errorf("endpoints are %v and %v, want %v and %v", got[0], got[steps], p1, p2)
	}
	// With a power of two steps, k/steps and 1-k/steps are exact.
	for k, p := range got {
		want := Evaluate(p1, c1, c2, p2, float64(k)/steps)
		if p != want {
			t.Errorf("sample %d = %v, want %v", k, p, want)
		}
	}

	dst := make([]Point, steps+1)
	CubicBez{p1, c1, c2, p2}.sampleInto(dst)
	diff(t, got, dst)
}

func TestCubicBezSubsegment(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 30), Pt(40, -10), Pt(50, 10)}
	sub := c.Subsegment(0.25, 0.75)
	for i := range 11 {
		s := float64(i) / 10
		diff(t, c.Eval(0.25+0.5*s), sub.Eval(s), cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestSampleReversed(t *testing.T) {
	c := CubicBez{Pt(0.1, 0.7), Pt(13.3, -2.9), Pt(-4.1, 8.6), Pt(9.7, 1.3)}
	r := CubicBez{c.P3, c.P2, c.P1, c.P0}
	for _, steps := range []int{1, 3, 7, 10, 33} {
		want := c.Sample(steps)
		got := r.Sample(steps)
		slices.Reverse(got)
		diff(t, want, got)
	}
}
