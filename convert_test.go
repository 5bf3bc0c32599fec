package bezier

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFromPolylineExactRoundTrip(t *testing.T) {
	for _, interp := range []int{3, 10, 25} {
		t.Run(fmt.Sprint(interp), func(t *testing.T) {
			src := wavyCurve(interp)
			pts := src.Polyline()
			if !IsLikelyBezierSample(pts, interp) {
				t.Fatal("samples of a curve were not recognized")
			}
			got := FromPolylineExact(pts, WithInterpolation(interp))
			approx := cmpopts.EquateApprox(0, 1e-4)
			diff(t, src.Anchors(), got.Anchors(), approx)
			// The outer handles of the end anchors are not part of the
			// samples; they rest on their anchors.
			want := src.Handles()
			want[0], want[len(want)-1] = src.Anchor(0), src.Anchor(src.AnchorCount()-1)
			diff(t, want, got.Handles(), approx)
			diff(t, pts, got.Polyline(), approx)
			checkCurve(t, got)
		})
	}
}

func TestIsLikelyBezierSample(t *testing.T) {
	c := wavyCurve(10)
	pts := c.Polyline()
	if !IsLikelyBezierSample(pts, 10) {
		t.Error("curve samples not recognized")
	}
	if IsLikelyBezierSample(pts, 7) {
		t.Error("recognized under the wrong interpolation")
	}
	if IsLikelyBezierSample(pts[:len(pts)-1], 10) {
		t.Error("recognized a truncated polyline")
	}
	bent := append([]Point(nil), pts...)
	bent[1] = bent[1].Translate(Vec(0, 0.5))
	if IsLikelyBezierSample(bent, 10) {
		t.Error("recognized a perturbed polyline")
	}
	var zigzag []Point
	for i := range 11 {
		zigzag = append(zigzag, Pt(float64(i), float64(i%2)))
	}
	if IsLikelyBezierSample(zigzag, 10) {
		t.Error("recognized a zigzag")
	}
	if IsLikelyBezierSample([]Point{Pt(0, 0)}, 10) || IsLikelyBezierSample(pts, 2) {
		t.Error("recognized a degenerate input")
	}
}

func TestFromPolylineAsSegments(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	c := FromPolylineAsSegments(pts, WithInterpolation(4))
	diff(t, pts, c.Anchors())
	diff(t, []Point{Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 0), Pt(10, 10), Pt(10, 10)}, c.Handles())
	checkCurve(t, c)
	for _, p := range c.Polyline()[:5] {
		if p.Y != 0 {
			t.Errorf("sample %v is off the first edge", p)
		}
	}
}

func TestFromPolylineByFitting(t *testing.T) {
	src := CubicBez{Pt(0, 0), Pt(40, 80), Pt(80, -80), Pt(120, 0)}.Sample(57)
	c := FromPolylineByFitting(src, 0.5)
	if c.AnchorCount() < 2 {
		t.Fatalf("got %d anchors", c.AnchorCount())
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	diff(t, src[0], c.Anchor(0), approx)
	diff(t, src[len(src)-1], c.Anchor(c.AnchorCount()-1), approx)
	checkCurve(t, c)

	same := FromPolylineByFitting([]Point{Pt(3, 3), Pt(3, 3)}, 0.5)
	diff(t, []Point{Pt(3, 3)}, same.Polyline())
}

func TestFromPolylineDegenerate(t *testing.T) {
	for _, mode := range []ConversionMode{ModeBezierExact, ModeSegments, ModeFit} {
		t.Run(mode.String(), func(t *testing.T) {
			if n := FromPolyline(nil, mode).AnchorCount(); n != 0 {
				t.Errorf("got %d anchors from no points", n)
			}
			c := FromPolyline([]Point{Pt(1, 2)}, mode)
			diff(t, []Point{Pt(1, 2)}, c.Anchors())
		})
	}
	mustPanic(t, "exact with stray samples", func() {
		FromPolylineExact(make([]Point, 12), WithInterpolation(10))
	})
	mustPanic(t, "invalid mode", func() { FromPolyline(nil, ConversionMode(9)) })
}

func TestFromPolylineAuto(t *testing.T) {
	src := wavyCurve(10)
	c := FromPolylineAuto(src.Polyline(), ModeSegments)
	if n := c.AnchorCount(); n != 4 {
		t.Errorf("got %d anchors from curve samples, want 4", n)
	}
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	c = FromPolylineAuto(pts, ModeSegments)
	diff(t, pts, c.Anchors())
}
