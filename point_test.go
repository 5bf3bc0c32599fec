package bezier

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(1, 2).Reflect(Pt(3, 3)), Pt(5, 4))
	diff(t, Pt(0, 0).Lerp(Pt(10, -4), 0.25), Pt(2.5, -1))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointNear(t *testing.T) {
	p := Pt(10, 10)
	for _, o := range []Point{Pt(10, 10), Pt(12, 12), Pt(8, 12), Pt(12, 8)} {
		if !p.Near(o, 2) {
			t.Errorf("%v is not near %v", o, p)
		}
	}
	if p.Near(Pt(12.1, 10), 2) {
		t.Error("point outside the box counted as near")
	}
	if !Pt(math.NaN(), 0).IsNaN() || Pt(1, 2).IsNaN() {
		t.Error("IsNaN is wrong")
	}
}
