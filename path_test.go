package bezier

import (
	"errors"
	"slices"
	"testing"
)

func TestSVGSingle(t *testing.T) {
	c := newTestCurve(10, []Point{Pt(10, 10), Pt(40, 40)}, []Point{Pt(10, 10), Pt(20, 20), Pt(30, 30), Pt(40, 40)})
	want := "M10,10 C20,20 30,30 40,40"
	got := SVG(c.PathElements(), SVGOptions{})
	diff(t, got, want)
}

func TestSVGTwo(t *testing.T) {
	c := newTestCurve(10,
		[]Point{Pt(10, 10), Pt(40, 40), Pt(10, 10)},
		[]Point{Pt(10, 10), Pt(20, 20), Pt(30, 30), Pt(40, 40), Pt(30, 30), Pt(20, 20)})
	// The curve returns to its start and is closed off.
	want := "M10,10 C20,20 30,30 40,40 C30,30 20,20 10,10 Z"
	got := SVG(c.PathElements(), SVGOptions{})
	diff(t, got, want)
}

func TestSVGStraight(t *testing.T) {
	c := FromPolylineAsSegments([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)})
	diff(t, SVG(c.PathElements(), SVGOptions{}), "M0,0 L10,0 L10,10")
	c.AddAnchor(-1, Pt(0, 0))
	diff(t, SVG(c.PathElements(), SVGOptions{}), "M0,0 L10,0 L10,10 L0,0 Z")
}

func TestSVGDegenerate(t *testing.T) {
	diff(t, SVG(New().PathElements(), SVGOptions{}), "")
	diff(t, SVG(FromPoint(Pt(1, -2)).PathElements(), SVGOptions{}), "M1,-2")
}

func TestSVGPrecision(t *testing.T) {
	els := slices.Values([]PathElement{
		MoveTo(Pt(1.0/3.0, 2.5)),
		LineTo(Pt(3, 0.126)),
		ClosePath(),
	})
	diff(t, SVG(els, SVGOptions{MaxPrecision: 2}), "M0.33,2.5 L3,0.13 Z")
	diff(t, SVG(els, SVGOptions{}), "M0.3333333333333333,2.5 L3,0.126 Z")
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	err := WriteSVG(failingWriter{}, wavyCurve(10).PathElements(), SVGOptions{})
	if !errors.Is(err, errWrite) {
		t.Errorf("got %v, want %v", err, errWrite)
	}
}

func TestPathElements(t *testing.T) {
	c := wavyCurve(10)
	els := slices.Collect(c.PathElements())
	if len(els) != 4 {
		t.Fatalf("got %d elements, want 4", len(els))
	}
	diff(t, MoveTo(Pt(0, 0)), els[0])
	diff(t, CubicTo(Pt(40, 5), Pt(50, -15), Pt(60, -5)), els[2])
	diff(t, "CubicTo((40, 5), (50, -15), (60, -5))", els[2].String())

	for range c.PathElements() {
		break
	}
}
