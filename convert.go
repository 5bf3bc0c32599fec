package bezier

import (
	"fmt"
	"log/slog"
	"math"
)

// ConversionMode selects how [FromPolyline] interprets a polyline.
type ConversionMode int

const (
	// ModeBezierExact treats the polyline as the samples of a curve produced
	// with the same interpolation and recovers its anchors and handles
	// exactly.
	ModeBezierExact ConversionMode = iota
	// ModeSegments turns every vertex into an anchor and every edge into a
	// straight segment whose handles rest on its anchors.
	ModeSegments
	// ModeFit fits cubic segments to the polyline within the curve's fit
	// tolerance.
	ModeFit
)

func (m ConversionMode) String() string {
	switch m {
	case ModeBezierExact:
		return "exact"
	case ModeSegments:
		return "segments"
	case ModeFit:
		return "fit"
	default:
		return fmt.Sprintf("ConversionMode(%d)", int(m))
	}
}

// sampleAgreement is how closely the two back-solves of a window must agree
// for the window to count as a sampled cubic.
const sampleAgreement = 1e-4

// FromPoint returns a curve with a single anchor at p.
func FromPoint(p Point, opts ...Option) *Curve {
	c := New(opts...)
	c.AddAnchor(0, p)
	return c
}

// FromPolyline builds a curve from pts using the given mode. Empty input
// yields an empty curve and a single point yields a single anchor.
func FromPolyline(pts []Point, mode ConversionMode, opts ...Option) *Curve {
	switch mode {
	case ModeBezierExact:
		return FromPolylineExact(pts, opts...)
	case ModeSegments:
		return FromPolylineAsSegments(pts, opts...)
	case ModeFit:
		return FromPolylineByFitting(pts, 0, opts...)
	default:
		panic(fmt.Sprintf("bezier: invalid conversion mode %v", mode))
	}
}

// FromPolylineExact recovers the curve whose samples pts are. The length of
// pts must be 1+k·Interpolation; use [IsLikelyBezierSample] to check whether
// the polyline qualifies.
func FromPolylineExact(pts []Point, opts ...Option) *Curve {
	c := New(opts...)
	if len(pts) < 2 {
		return seed(c, pts)
	}
	interp := c.cfg.interpolation
	if interp < 3 {
		panic(fmt.Sprintf("bezier: exact conversion needs an interpolation of at least 3, got %d", interp))
	}
	if len(pts)%interp != 1 {
		panic(fmt.Sprintf("bezier: %d samples do not form whole segments of %d", len(pts), interp))
	}
	for i := 0; i+interp < len(pts); i += interp {
		start, c0, end, c1 := SolveControlPoints(pts[i:i+interp+1], SolveA)
		c.appendSegment(CubicBez{start, c0, c1, end})
	}
	return c
}

// FromPolylineAsSegments returns a curve with one straight segment per edge
// of pts.
func FromPolylineAsSegments(pts []Point, opts ...Option) *Curve {
	c := New(opts...)
	if len(pts) < 2 {
		return seed(c, pts)
	}
	for i := range len(pts) - 1 {
		c.appendSegment(Line{pts[i], pts[i+1]}.Cubic())
	}
	return c
}

// FromPolylineByFitting fits cubic segments to pts. A tolerance of zero or
// less uses the tolerance configured by the options.
func FromPolylineByFitting(pts []Point, tol float64, opts ...Option) *Curve {
	c := New(opts...)
	if tol <= 0 {
		tol = c.cfg.fitTolerance
	}
	if len(pts) < 2 {
		return seed(c, pts)
	}
	if cmd := c.insertFitted(pts, 0, true, tol); cmd.Count == 0 {
		// Every point coincided.
		c.AddAnchor(0, pts[0])
	}
	return c
}

// FromPolylineAuto converts pts exactly when it looks like the samples of a
// curve with the configured interpolation, and with fallback otherwise.
func FromPolylineAuto(pts []Point, fallback ConversionMode, opts ...Option) *Curve {
	cfg := newConfig(opts)
	mode := fallback
	if IsLikelyBezierSample(pts, cfg.interpolation) {
		mode = ModeBezierExact
	}
	Logger().Debug("converting polyline", slog.Int("points", len(pts)), slog.String("mode", mode.String()))
	return FromPolyline(pts, mode, opts...)
}

// IsLikelyBezierSample reports whether pts looks like the samples of a curve
// built with the given interpolation. Each window of interpolation+1 samples
// is back-solved from its start and from its end; both solves must agree on
// the control points. Interpolations below 3 leave too few samples per
// window to tell and always report false.
func IsLikelyBezierSample(pts []Point, interpolation int) bool {
	if interpolation < 3 || len(pts) < interpolation+1 || len(pts)%interpolation != 1 {
		return false
	}
	for i := 0; i+interpolation < len(pts); i += interpolation {
		w := pts[i : i+interpolation+1]
		_, ca0, _, ca1 := SolveControlPoints(w, SolveA)
		_, cb0, _, cb1 := SolveControlPoints(w, SolveB)
		if !agree(ca0, cb0) || !agree(ca1, cb1) {
			return false
		}
	}
	return true
}

func agree(a, b Point) bool {
	return math.Abs(a.X-b.X) < sampleAgreement && math.Abs(a.Y-b.Y) < sampleAgreement
}

func seed(c *Curve, pts []Point) *Curve {
	if len(pts) == 1 {
		c.AddAnchor(0, pts[0])
	}
	return c
}

// appendSegment extends the curve by seg. An empty curve takes seg.P0 as its
// first anchor; otherwise seg.P0 is assumed to be the last anchor and only
// its outgoing handle is taken from seg.
func (c *Curve) appendSegment(seg CubicBez) {
	n := len(c.anchors)
	if n == 0 {
		c.anchors = append(c.anchors, seg.P0)
		c.handles = append(c.handles, seg.P0, seg.P1)
		c.samples = append(c.samples, seg.P0)
	} else {
		c.handles[2*n-1] = seg.P1
	}
	c.anchors = append(c.anchors, seg.P3)
	c.handles = append(c.handles, seg.P2, seg.P3)
	// The last sample is the shared anchor; Eval(0) reproduces it exactly.
	c.samples = seg.AppendSamples(c.samples[:len(c.samples)-1], c.cfg.interpolation)
}

// insertFitted fits cubics to points and splices them into the curve after
// anchor offset-1. With offset 0 the curve must be empty and the fit seeds
// it. Otherwise points must start at anchor offset-1. Unless last is set, the
// final fitted cubic ends on the existing anchor at offset and no anchor is
// added for it.
//
// The returned command records the number of anchors added and the handles
// that were overwritten at either end of the span.
func (c *Curve) insertFitted(points []Point, offset int, last bool, tol float64) InsertSpanCommand {
	cmd := InsertSpanCommand{Index: offset}
	if offset > 0 {
		cmd.First, cmd.HasFirst = c.handles[offset*2-1], true
	}
	if !last {
		cmd.Last, cmd.HasLast = c.handles[offset*2], true
	}

	beziers := FitPolylineSlice(points, tol)
	for i, bez := range beziers {
		if offset == 0 {
			if i == 0 {
				c.AddAnchor(0, bez.P0)
				cmd.Count++
			}
			c.MoveHandle(i*2+1, bez.P1)
			c.AddAnchor(i+1, bez.P3)
			c.MoveHandle((i+1)*2, bez.P2)
			cmd.Count++
			continue
		}
		idx := (offset-1+i)*2 + 1
		c.MoveHandle(idx, bez.P1)
		if i != len(beziers)-1 || last {
			c.AddAnchor(offset+i, bez.P3)
			cmd.Count++
		}
		c.MoveHandle(idx+1, bez.P2)
	}
	Logger().Debug("inserted fitted span",
		slog.Int("offset", offset),
		slog.Int("segments", len(beziers)),
		slog.Int("anchors", cmd.Count))
	return cmd
}
