package bezier

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// PathElementKind is the drawing instruction of a [PathElement].
type PathElementKind int

const (
	MoveToKind PathElementKind = iota + 1
	LineToKind
	CubicToKind
	ClosePathKind
)

// PathElement is one drawing instruction, in the form graphics APIs and SVG
// path data expect. MoveTo and LineTo use P0; CubicTo uses P0 and P1 as the
// handles and P2 as the end point.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElement(%d)", el.Kind)
	}
}

func MoveTo(pt Point) PathElement { return PathElement{Kind: MoveToKind, P0: pt} }

func LineTo(pt Point) PathElement { return PathElement{Kind: LineToKind, P0: pt} }

func CubicTo(c0, c1, end Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: c0, P1: c1, P2: end}
}

func ClosePath() PathElement { return PathElement{Kind: ClosePathKind} }

// PathElements returns the curve as drawing instructions: a move to the
// first anchor and one element per segment. Segments whose handles rest on
// their anchors are straight and become lines. A curve of at least three
// anchors whose last anchor lies on its first is closed off.
func (c *Curve) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		n := len(c.anchors)
		if n == 0 || !yield(MoveTo(c.anchors[0])) {
			return
		}
		for i := range n - 1 {
			seg := c.Segment(i)
			el := CubicTo(seg.P1, seg.P2, seg.P3)
			if seg.P1 == seg.P0 && seg.P2 == seg.P3 {
				el = LineTo(seg.P3)
			}
			if !yield(el) {
				return
			}
		}
		if n >= 3 && c.anchors[0] == c.anchors[n-1] {
			yield(ClosePath())
		}
	}
}

// SVGOptions configures [SVG] and [WriteSVG].
type SVGOptions struct {
	// MaxPrecision limits the number of decimals written per coordinate.
	// Zero writes the shortest representation that round-trips.
	MaxPrecision int
}

func (opts SVGOptions) format(f float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', opts.MaxPrecision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

func (opts SVGOptions) point(p Point) string {
	return opts.format(p.X) + "," + opts.format(p.Y)
}

// SVG formats path elements as SVG path data.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	var sb strings.Builder
	// Writing to a strings.Builder does not fail.
	_ = WriteSVG(&sb, seq, opts)
	return sb.String()
}

// WriteSVG is like [SVG] but writes to w. It stops at the first write error.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	sep := ""
	for el := range seq {
		var cmd string
		switch el.Kind {
		case MoveToKind:
			cmd = "M" + opts.point(el.P0)
		case LineToKind:
			cmd = "L" + opts.point(el.P0)
		case CubicToKind:
			cmd = "C" + opts.point(el.P0) + " " + opts.point(el.P1) + " " + opts.point(el.P2)
		case ClosePathKind:
			cmd = "Z"
		default:
			panic("unreachable")
		}
		if _, err := io.WriteString(w, sep+cmd); err != nil {
			return err
		}
		sep = " "
	}
	return nil
}
