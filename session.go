package bezier

import (
	"fmt"
	"iter"
)

// EditMode is the kind of interaction a [Session] is driven by. Both modes
// edit the same curve and share one undo history.
type EditMode int

const (
	// ModeDirect edits anchors and handles one at a time.
	ModeDirect EditMode = iota
	// ModeFreehand merges drawn strokes into the curve.
	ModeFreehand
)

func (m EditMode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeFreehand:
		return "freehand"
	default:
		return fmt.Sprintf("EditMode(%d)", int(m))
	}
}

// Session applies user edits to a curve and records them for undo. Every
// verb is recorded; mutating the curve directly bypasses the history and
// invalidates it.
type Session struct {
	curve   *Curve
	history UndoStack
	mode    EditMode
}

// NewSession returns a session editing c with an empty history.
func NewSession(c *Curve) *Session {
	return &Session{curve: c}
}

// Curve returns the curve being edited.
func (s *Session) Curve() *Curve { return s.curve }

func (s *Session) Mode() EditMode { return s.mode }

func (s *Session) SetMode(m EditMode) { s.mode = m }

// Depth returns the number of recorded commands.
func (s *Session) Depth() int { return s.history.Len() }

// History returns the recorded commands, oldest first.
func (s *Session) History() iter.Seq[Command] { return s.history.All() }

// Undo reverts the most recent edit and returns the remaining depth. Zero
// means there is nothing left to undo.
func (s *Session) Undo() int {
	return s.history.Undo(s.curve)
}

// AddAnchor adds an anchor at index, or appends it for -1, and returns its
// index.
func (s *Session) AddAnchor(index int, p Point) int {
	if index == -1 {
		index = s.curve.AnchorCount()
	}
	s.curve.AddAnchor(index, p)
	s.history.Push(AddAnchorCommand{Index: index})
	return index
}

// MoveAnchor moves anchor index and its handles so the anchor lands on p.
func (s *Session) MoveAnchor(index int, p Point) {
	s.history.Push(s.moveAnchorCommand(index))
	s.curve.MoveAnchor(index, p)
}

func (s *Session) moveAnchorCommand(index int) MoveAnchorCommand {
	c := s.curve
	c.checkAnchor(index)
	return MoveAnchorCommand{
		Index:  index,
		Anchor: c.anchors[index],
		In:     c.handles[2*index],
		Out:    c.handles[2*index+1],
	}
}

// DeleteAnchor deletes anchor index. Deleting the sole anchor empties the
// curve.
func (s *Session) DeleteAnchor(index int) {
	c := s.curve
	c.checkAnchor(index)
	if c.AnchorCount() == 1 {
		s.history.Push(ResetCommand{Anchor: c.anchors[0], In: c.handles[0], Out: c.handles[1]})
		c.Reset()
		return
	}
	s.history.Push(DeleteAnchorCommand{
		Index:  index,
		Anchor: c.anchors[index],
		In:     c.handles[2*index],
		Out:    c.handles[2*index+1],
	})
	c.DeleteAnchor(index)
}

// MoveHandle moves handle index to p.
func (s *Session) MoveHandle(index int, p Point) {
	s.history.Push(MoveHandleCommand{Index: index, From: s.curve.Handle(index)})
	s.curve.MoveHandle(index, p)
}

// DeleteHandle retracts handle index onto its anchor.
func (s *Session) DeleteHandle(index int) {
	c := s.curve
	s.history.Push(DeleteHandleCommand{Index: index, From: c.Handle(index)})
	c.MoveHandle(index, c.anchors[index/2])
}

// MirrorHandles sets the outgoing handle of anchor to p and mirrors the
// incoming handle through the anchor.
func (s *Session) MirrorHandles(anchor int, p Point) {
	c := s.curve
	c.checkAnchor(anchor)
	s.history.Push(MirrorHandlesCommand{Anchor: anchor, In: c.handles[2*anchor], Out: c.handles[2*anchor+1]})
	c.MirrorHandles(anchor, p)
}

// InsertAnchor inserts an anchor at p on the curve without changing its
// shape. sampleIndex is the index returned by
// [Curve.NearestPointOnCurveWithin]. It returns the new anchor's index.
func (s *Session) InsertAnchor(sampleIndex int, p Point) int {
	c := s.curve
	if len(c.anchors) < 2 || sampleIndex < 1 || sampleIndex >= len(c.samples) {
		// Let the curve report the violation.
		return c.InsertAnchor(sampleIndex, p)
	}
	a := c.AnchorOfSample(sampleIndex)
	cmd := InsertAnchorCommand{Index: a, Out: c.handles[2*a-1], In: c.handles[2*a]}
	c.InsertAnchor(sampleIndex, p)
	s.history.Push(cmd)
	return a
}

// Flip reverses the direction of the curve.
func (s *Session) Flip() {
	s.curve.Flip()
	s.history.Push(FlipCommand{})
}

// SplitAt splits the curve as [Curve.SplitAt] does. An anchor inserted to
// split between anchors is recorded.
func (s *Session) SplitAt(position int, isAnchor bool, p Point) (a, b []Point) {
	if !isAnchor {
		position = s.InsertAnchor(position, p)
	}
	return s.curve.SplitAt(position, true, Point{})
}
