package bezier

import (
	"fmt"
	"slices"
)

// Curve is a piecewise cubic Bézier curve held as three parallel sequences:
// anchors, handles (two per anchor, incoming then outgoing) and the dense
// sample polyline that approximates the curve. Every mutation keeps the
// samples in sync by recomputing only the segments it touched.
//
// A Curve is not safe for concurrent use.
type Curve struct {
	cfg     config
	anchors []Point
	handles []Point
	samples []Point
}

// New returns an empty curve.
func New(opts ...Option) *Curve {
	return &Curve{cfg: newConfig(opts)}
}

// Interpolation returns the number of samples per segment.
func (c *Curve) Interpolation() int { return c.cfg.interpolation }

// FitTolerance returns the tolerance used for fitting polylines and strokes.
func (c *Curve) FitTolerance() float64 { return c.cfg.fitTolerance }

// AnchorCount returns the number of anchors.
func (c *Curve) AnchorCount() int { return len(c.anchors) }

// SegmentCount returns the number of cubic segments, which is one less than
// the number of anchors for non-empty curves.
func (c *Curve) SegmentCount() int { return max(len(c.anchors)-1, 0) }

// Anchor returns anchor i.
func (c *Curve) Anchor(i int) Point {
	c.checkAnchor(i)
	return c.anchors[i]
}

// Handle returns handle i. Handle 2a is anchor a's incoming handle and 2a+1
// its outgoing handle.
func (c *Curve) Handle(i int) Point {
	c.checkHandle(i)
	return c.handles[i]
}

// Anchors returns a copy of the anchors.
func (c *Curve) Anchors() []Point { return slices.Clone(c.anchors) }

// Handles returns a copy of the handles.
func (c *Curve) Handles() []Point { return slices.Clone(c.handles) }

// Polyline returns the sample polyline. It has 1+(N-1)·Interpolation points
// for N ≥ 2 anchors, one point for a single anchor and none for an empty
// curve. The slice is owned by the curve and must not be modified; it is
// invalidated by the next mutation.
func (c *Curve) Polyline() []Point { return c.samples }

// Segment returns segment i, which runs from anchor i to anchor i+1.
func (c *Curve) Segment(i int) CubicBez {
	if i < 0 || i >= len(c.anchors)-1 {
		panic(fmt.Sprintf("bezier: segment index %d out of range [0, %d)", i, len(c.anchors)-1))
	}
	return CubicBez{
		P0: c.anchors[i],
		P1: c.handles[2*i+1],
		P2: c.handles[2*i+2],
		P3: c.anchors[i+1],
	}
}

// Reset removes all anchors. It is the only way to remove the last anchor.
func (c *Curve) Reset() {
	c.anchors = c.anchors[:0]
	c.handles = c.handles[:0]
	c.samples = c.samples[:0]
}

// AddAnchor inserts an anchor at index, with both of its handles resting on
// it. An index of -1 or AnchorCount appends. Only the segments adjacent to
// the new anchor are sampled.
func (c *Curve) AddAnchor(index int, p Point) {
	n := len(c.anchors)
	if index == -1 {
		index = n
	}
	if index < 0 || index > n {
		panic(fmt.Sprintf("bezier: anchor index %d out of range [0, %d]", index, n))
	}
	c.anchors = slices.Insert(c.anchors, index, p)
	c.handles = slices.Insert(c.handles, 2*index, p, p)
	n++

	interp := c.cfg.interpolation
	switch {
	case n == 1:
		c.samples = append(c.samples[:0], p)
	case index == 0:
		// The old first sample is the old first anchor, which ends the new
		// segment.
		seg := c.Segment(0).Sample(interp)
		c.samples = slices.Insert(c.samples, 0, seg[:interp]...)
	case index == n-1:
		seg := c.Segment(index - 1).Sample(interp)
		c.samples = append(c.samples, seg[1:]...)
	default:
		w := c.Segment(index - 1).Sample(interp)
		w = c.Segment(index).AppendSamples(w[:interp], interp)
		s := c.SampleOfAnchor(index - 1)
		c.samples = slices.Replace(c.samples, s, s+interp+1, w...)
	}
}

// DeleteAnchor removes anchor index and its handles. The segment between its
// former neighbours keeps their current handles. Deleting the sole anchor
// panics; use [Curve.Reset].
func (c *Curve) DeleteAnchor(index int) {
	c.checkAnchor(index)
	n := len(c.anchors)
	if n == 1 {
		panic("bezier: cannot delete the sole anchor, use Reset")
	}

	interp := c.cfg.interpolation
	switch {
	case index == 0:
		c.samples = slices.Delete(c.samples, 0, interp)
	case index == n-1:
		c.samples = slices.Delete(c.samples, c.SampleOfAnchor(index-1)+1, len(c.samples))
	default:
		seg := CubicBez{
			P0: c.anchors[index-1],
			P1: c.handles[2*(index-1)+1],
			P2: c.handles[2*(index+1)],
			P3: c.anchors[index+1],
		}
		s := c.SampleOfAnchor(index - 1)
		e := c.SampleOfAnchor(index+1) + 1
		c.samples = slices.Replace(c.samples, s, e, seg.Sample(interp)...)
	}
	c.handles = slices.Delete(c.handles, 2*index, 2*index+2)
	c.anchors = slices.Delete(c.anchors, index, index+1)
}

// MoveAnchor moves anchor index to p and translates both of its handles by
// the same offset.
func (c *Curve) MoveAnchor(index int, p Point) {
	c.checkAnchor(index)
	d := p.Sub(c.anchors[index])
	c.setAnchor(index, p, c.handles[2*index].Translate(d), c.handles[2*index+1].Translate(d))
}

// setAnchor replaces anchor index and both of its handles and resamples the
// adjacent segments.
func (c *Curve) setAnchor(index int, p, in, out Point) {
	c.anchors[index] = p
	c.handles[2*index] = in
	c.handles[2*index+1] = out
	if len(c.anchors) == 1 {
		c.samples[0] = p
		return
	}
	if index < len(c.anchors)-1 {
		c.updateSegment(index)
	}
	if index >= 1 {
		c.updateSegment(index - 1)
	}
}

// MoveHandle moves handle index to p and resamples the segment it shapes.
// The incoming handle of the first anchor and the outgoing handle of the
// last anchor shape no segment; moving them only records the position.
func (c *Curve) MoveHandle(index int, p Point) {
	c.checkHandle(index)
	c.handles[index] = p
	if len(c.anchors) < 2 {
		return
	}
	switch {
	case index%2 == 1 && index < len(c.handles)-1:
		c.updateSegment(index / 2)
	case index%2 == 0 && index >= 1:
		c.updateSegment((index - 1) / 2)
	}
}

// MirrorHandles sets the outgoing handle of anchor to p and its incoming
// handle to the reflection of p through the anchor, as when dragging out a
// smooth anchor.
func (c *Curve) MirrorHandles(anchor int, p Point) {
	c.checkAnchor(anchor)
	a := c.anchors[anchor]
	c.setAnchor(anchor, a, p.Reflect(a), p)
}

// InsertAnchor inserts an anchor at p, which lies on the edge of the sample
// polyline that ends at sample sampleIndex, keeping the shape of the curve.
// The handles of the two new sub-segments are recovered from the existing
// samples with [SolveControlPoints], mode A on the left and mode B on the
// right. When p is sample sampleIndex itself the sub-segments reproduce the
// curve exactly; elsewhere on the edge they follow it approximately. A side
// with fewer than four samples for the solve becomes a straight sub-segment.
//
// It returns the index of the new anchor.
func (c *Curve) InsertAnchor(sampleIndex int, p Point) int {
	if len(c.anchors) < 2 {
		panic("bezier: InsertAnchor needs at least two anchors")
	}
	if sampleIndex < 1 || sampleIndex >= len(c.samples) {
		panic(fmt.Sprintf("bezier: sample index %d out of range [1, %d)", sampleIndex, len(c.samples)))
	}
	a := c.AnchorOfSample(sampleIndex)
	s0 := c.SampleOfAnchor(a - 1)
	s1 := c.SampleOfAnchor(a)

	left := append(slices.Clone(c.samples[s0:sampleIndex]), p)
	var right []Point
	if p == c.samples[sampleIndex] && sampleIndex < s1 {
		// p is a sample; both sides then hold exact uniform samples.
		right = slices.Clone(c.samples[sampleIndex : s1+1])
	} else {
		right = append([]Point{p}, c.samples[sampleIndex:s1+1]...)
	}

	var c1a, c2a, c1b, c2b Point
	if len(left) >= 4 {
		_, c1a, _, c2a = SolveControlPoints(left, SolveA)
	} else {
		c1a, c2a = c.samples[s0], p
	}
	if len(right) >= 4 {
		_, c1b, _, c2b = SolveControlPoints(right, SolveB)
	} else {
		c1b, c2b = p, c.samples[s1]
	}

	c.AddAnchor(a, p)
	c.handles[2*a-1] = c1a
	c.handles[2*a] = c2a
	c.handles[2*a+1] = c1b
	c.handles[2*a+2] = c2b
	c.updateSegment(a - 1)
	c.updateSegment(a)
	return a
}

// Flip reverses the direction of the curve. Each anchor's incoming and
// outgoing handles swap roles.
func (c *Curve) Flip() {
	slices.Reverse(c.anchors)
	slices.Reverse(c.handles)
	slices.Reverse(c.samples)
}

// SplitAt returns the samples on either side of a split point as two
// independent polylines that share the split point. If isAnchor is set,
// position is an anchor index; otherwise it is a sample index as accepted by
// [Curve.InsertAnchor], and an anchor is first inserted at p. The curve is
// not changed otherwise.
func (c *Curve) SplitAt(position int, isAnchor bool, p Point) (a, b []Point) {
	idx := position
	if isAnchor {
		c.checkAnchor(idx)
	} else {
		idx = c.InsertAnchor(position, p)
	}
	s := c.SampleOfAnchor(idx)
	return slices.Clone(c.samples[:s+1]), slices.Clone(c.samples[s:])
}

// updateSegment resamples segment i in place.
func (c *Curve) updateSegment(i int) {
	c.Segment(i).sampleInto(c.window(i))
}

func (c *Curve) checkAnchor(i int) {
	if i < 0 || i >= len(c.anchors) {
		panic(fmt.Sprintf("bezier: anchor index %d out of range [0, %d)", i, len(c.anchors)))
	}
}

func (c *Curve) checkHandle(i int) {
	if i < 0 || i >= len(c.handles) {
		panic(fmt.Sprintf("bezier: handle index %d out of range [0, %d)", i, len(c.handles)))
	}
}
