package bezier

import (
	"log/slog"
	"math"
	"slices"
)

// strokeSmoothing is the number of corner cutting passes applied to a stroke
// before it is fitted.
const strokeSmoothing = 1

// MergeStroke splices a freehand stroke into the curve.
//
// On a curve without shape the stroke seeds it: a stroke of at most two
// points places a single anchor, a longer stroke is fitted. On a curve with
// shape the stroke's start is attached to the closest point of the curve.
// If the stroke ends within snapDistance of the curve further along, it
// replaces the span between the two points; otherwise it replaces everything
// from its start onwards. A stroke drawn against the curve's direction is
// merged on the flipped curve, which is flipped back afterwards.
//
// If snapToStart is set, the last anchor is then moved onto the first one to
// close the curve.
//
// A merge is recorded as one transaction; a single [Session.Undo] reverts
// it.
func (s *Session) MergeStroke(stroke []Point, snapDistance float64, snapToStart bool) {
	if len(stroke) == 0 {
		return
	}
	c := s.curve
	if c.AnchorCount() < 2 {
		s.seedStroke(stroke, snapToStart)
		return
	}
	if len(stroke) < 2 {
		return
	}
	tol := c.cfg.fitTolerance

	_, sv, _ := c.closestEdge(stroke[0])
	tangent := c.samples[sv].Sub(c.samples[sv-1])
	reversed := tangent.Dot(stroke[1].Sub(stroke[0])) < 0

	s.history.Push(BeginMergeCommand{})
	if reversed {
		c.Flip()
	}
	_, sv, _ = c.closestEdge(stroke[0])
	_, lv, ld := c.closestEdge(stroke[len(stroke)-1])
	sa := c.AnchorOfSample(sv)
	la := c.AnchorOfSample(lv)
	lastNear := math.Sqrt(ld) < snapDistance

	head := c.window(sa - 1)[:c.windowPos(sv)]
	if lastNear && lv > sv && la <= c.SegmentCount() {
		tail := c.window(la - 1)[c.windowPos(lv):]
		poly := Smooth(slices.Concat(head, stroke, tail), strokeSmoothing)
		Logger().Debug("merging stroke into span",
			slog.Int("from", sa), slog.Int("to", la), slog.Bool("reversed", reversed))
		for range la - sa {
			s.DeleteAnchor(sa)
		}
		s.history.Push(c.insertFitted(poly, sa, false, tol))
	} else {
		poly := Smooth(slices.Concat(head, stroke), strokeSmoothing)
		Logger().Debug("merging stroke at end",
			slog.Int("from", sa), slog.Bool("reversed", reversed))
		for range c.AnchorCount() - sa {
			s.DeleteAnchor(sa)
		}
		s.history.Push(c.insertFitted(poly, sa, true, tol))
	}

	if snapToStart {
		first, last := 0, c.AnchorCount()-1
		if reversed {
			first, last = last, first
		}
		s.MoveAnchor(last, c.anchors[first])
	}
	if reversed {
		c.Flip()
	}
	s.history.Push(EndMergeCommand{Reversed: reversed})
}

// seedStroke handles a stroke on a curve with at most one anchor.
func (s *Session) seedStroke(stroke []Point, snapToStart bool) {
	c := s.curve
	n := c.AnchorCount()
	if len(stroke) <= 2 {
		// A click rather than a drag.
		p := stroke[0]
		if n == 0 {
			s.AddAnchor(0, p)
			return
		}
		s.history.Push(s.moveAnchorCommand(0))
		c.setAnchor(0, p, p, p)
		return
	}

	poly := Smooth(stroke, strokeSmoothing)
	tol := c.cfg.fitTolerance
	fresh := s.history.Len() == 0
	s.history.Push(BeginMergeCommand{})
	if n == 0 || fresh {
		Logger().Debug("seeding curve from stroke", slog.Int("points", len(stroke)))
		if n == 1 {
			s.DeleteAnchor(0)
		}
		s.history.Push(c.insertFitted(poly, 0, true, tol))
	} else {
		Logger().Debug("extending anchor with stroke", slog.Int("points", len(stroke)))
		s.history.Push(c.insertFitted(poly, 1, true, tol))
	}
	if snapToStart && c.AnchorCount() > 1 {
		s.MoveAnchor(c.AnchorCount()-1, c.anchors[0])
	}
	s.history.Push(EndMergeCommand{})
}
