package bezier

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
)

// ErrUnsupportedGeometry is returned by [FromGeometry] for geometry types
// that cannot be edited as a single curve.
var ErrUnsupportedGeometry = errors.New("unsupported geometry")

// GeometryKind is the kind of geometry a curve is flattened into.
type GeometryKind int

const (
	PointGeometry GeometryKind = iota + 1
	LineGeometry
	PolygonGeometry
)

func (k GeometryKind) String() string {
	switch k {
	case PointGeometry:
		return "point"
	case LineGeometry:
		return "line"
	case PolygonGeometry:
		return "polygon"
	default:
		return fmt.Sprintf("GeometryKind(%d)", int(k))
	}
}

// ParseGeometryKind parses the names returned by [GeometryKind.String].
func ParseGeometryKind(s string) (GeometryKind, error) {
	switch s {
	case "point":
		return PointGeometry, nil
	case "line":
		return LineGeometry, nil
	case "polygon":
		return PolygonGeometry, nil
	default:
		return 0, fmt.Errorf("unknown geometry kind %q", s)
	}
}

// GeometryStatus reports why [Curve.Geometry] could not produce a geometry.
type GeometryStatus int

const (
	StatusOK GeometryStatus = iota
	// StatusInsufficientAnchors means the curve may become valid for the
	// kind once more anchors are added.
	StatusInsufficientAnchors
	// StatusKindMismatch means the curve can never be of the kind, such as a
	// curve with several anchors flattened into a point.
	StatusKindMismatch
)

func (s GeometryStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInsufficientAnchors:
		return "insufficient anchors"
	case StatusKindMismatch:
		return "kind mismatch"
	default:
		return fmt.Sprintf("GeometryStatus(%d)", int(s))
	}
}

// Geometry flattens the curve's samples into a geometry of the given kind.
// A point needs exactly one anchor, a line at least two and a polygon at
// least three. A polygon whose samples do not close is closed by a straight
// run of samples from the last sample back to the first. If multi is set,
// the result is wrapped in the corresponding multi-geometry.
//
// When the status is not [StatusOK], the geometry is nil.
func (c *Curve) Geometry(kind GeometryKind, multi bool) (geom.T, GeometryStatus) {
	n := len(c.anchors)
	switch kind {
	case PointGeometry:
		switch {
		case n == 0:
			return nil, StatusInsufficientAnchors
		case n > 1:
			return nil, StatusKindMismatch
		}
		flat := flatten(c.samples[:1])
		if multi {
			return geom.NewMultiPointFlat(geom.XY, flat), StatusOK
		}
		return geom.NewPointFlat(geom.XY, flat), StatusOK

	case LineGeometry:
		if n < 2 {
			return nil, StatusInsufficientAnchors
		}
		flat := flatten(c.samples)
		if multi {
			return geom.NewMultiLineStringFlat(geom.XY, flat, []int{len(flat)}), StatusOK
		}
		return geom.NewLineStringFlat(geom.XY, flat), StatusOK

	case PolygonGeometry:
		if n < 3 {
			return nil, StatusInsufficientAnchors
		}
		ring := c.samples
		first, last := c.samples[0], c.samples[len(c.samples)-1]
		if first != last {
			closing := straightCubic(last, first).Sample(c.cfg.interpolation)
			ring = append(ring[:len(ring):len(ring)], closing[1:]...)
		}
		flat := flatten(ring)
		if multi {
			return geom.NewMultiPolygonFlat(geom.XY, flat, [][]int{{len(flat)}}), StatusOK
		}
		return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}), StatusOK

	default:
		return nil, StatusKindMismatch
	}
}

// FromGeometry builds a curve from a point, line string or polygon, or from
// the first part of the corresponding multi-geometry. Polygons contribute
// their outer ring. Polylines are converted with [FromPolylineAuto].
func FromGeometry(g geom.T, fallback ConversionMode, opts ...Option) (*Curve, error) {
	switch g := g.(type) {
	case *geom.Point:
		if g.Empty() {
			return New(opts...), nil
		}
		return FromPoint(Pt(g.X(), g.Y()), opts...), nil
	case *geom.LineString:
		return FromPolylineAuto(unflatten(g.FlatCoords(), g.Stride()), fallback, opts...), nil
	case *geom.Polygon:
		if g.NumLinearRings() == 0 {
			return New(opts...), nil
		}
		r := g.LinearRing(0)
		return FromPolylineAuto(unflatten(r.FlatCoords(), r.Stride()), fallback, opts...), nil
	case *geom.MultiPoint:
		if g.NumPoints() == 0 {
			return New(opts...), nil
		}
		return FromGeometry(g.Point(0), fallback, opts...)
	case *geom.MultiLineString:
		if g.NumLineStrings() == 0 {
			return New(opts...), nil
		}
		return FromGeometry(g.LineString(0), fallback, opts...)
	case *geom.MultiPolygon:
		if g.NumPolygons() == 0 {
			return New(opts...), nil
		}
		return FromGeometry(g.Polygon(0), fallback, opts...)
	default:
		return nil, fmt.Errorf("converting %T: %w", g, ErrUnsupportedGeometry)
	}
}

func flatten(pts []Point) []float64 {
	flat := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

// unflatten reads the first two ordinates of every coordinate in flat.
func unflatten(flat []float64, stride int) []Point {
	if stride < 2 {
		return nil
	}
	pts := make([]Point, 0, len(flat)/stride)
	for i := 0; i+1 < len(flat); i += stride {
		pts = append(pts, Pt(flat[i], flat[i+1]))
	}
	return pts
}
