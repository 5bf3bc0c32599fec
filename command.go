package bezier

// A Command records one committed edit together with the state needed to
// revert it. The set of commands is closed; all implementations live in this
// package.
type Command interface {
	revert(c *Curve)
}

var (
	_ Command = AddAnchorCommand{}
	_ Command = MoveAnchorCommand{}
	_ Command = DeleteAnchorCommand{}
	_ Command = ResetCommand{}
	_ Command = MoveHandleCommand{}
	_ Command = DeleteHandleCommand{}
	_ Command = MirrorHandlesCommand{}
	_ Command = InsertAnchorCommand{}
	_ Command = FlipCommand{}
	_ Command = InsertSpanCommand{}
	_ Command = BeginMergeCommand{}
	_ Command = EndMergeCommand{}
)

// AddAnchorCommand records that an anchor was added at Index.
type AddAnchorCommand struct {
	Index int
}

func (cmd AddAnchorCommand) revert(c *Curve) {
	if c.AnchorCount() == 1 {
		c.Reset()
		return
	}
	c.DeleteAnchor(cmd.Index)
}

// MoveAnchorCommand records the anchor and handles of anchor Index before it
// moved.
type MoveAnchorCommand struct {
	Index  int
	Anchor Point
	In     Point
	Out    Point
}

func (cmd MoveAnchorCommand) revert(c *Curve) {
	c.setAnchor(cmd.Index, cmd.Anchor, cmd.In, cmd.Out)
}

// DeleteAnchorCommand records a deleted anchor and its handles.
type DeleteAnchorCommand struct {
	Index  int
	Anchor Point
	In     Point
	Out    Point
}

func (cmd DeleteAnchorCommand) revert(c *Curve) {
	c.AddAnchor(cmd.Index, cmd.Anchor)
	c.setAnchor(cmd.Index, cmd.Anchor, cmd.In, cmd.Out)
}

// ResetCommand records the sole anchor of a curve that was emptied.
type ResetCommand struct {
	Anchor Point
	In     Point
	Out    Point
}

func (cmd ResetCommand) revert(c *Curve) {
	c.AddAnchor(0, cmd.Anchor)
	c.setAnchor(0, cmd.Anchor, cmd.In, cmd.Out)
}

// MoveHandleCommand records the position of handle Index before it moved.
type MoveHandleCommand struct {
	Index int
	From  Point
}

func (cmd MoveHandleCommand) revert(c *Curve) {
	c.MoveHandle(cmd.Index, cmd.From)
}

// DeleteHandleCommand records the position of handle Index before it was
// retracted onto its anchor.
type DeleteHandleCommand struct {
	Index int
	From  Point
}

func (cmd DeleteHandleCommand) revert(c *Curve) {
	c.MoveHandle(cmd.Index, cmd.From)
}

// MirrorHandlesCommand records both handles of Anchor before they were
// mirrored.
type MirrorHandlesCommand struct {
	Anchor int
	In     Point
	Out    Point
}

func (cmd MirrorHandlesCommand) revert(c *Curve) {
	c.setAnchor(cmd.Anchor, c.anchors[cmd.Anchor], cmd.In, cmd.Out)
}

// InsertAnchorCommand records a shape-preserving insertion at anchor Index
// and the handles of the segment it split.
type InsertAnchorCommand struct {
	Index int
	Out   Point
	In    Point
}

func (cmd InsertAnchorCommand) revert(c *Curve) {
	c.DeleteAnchor(cmd.Index)
	c.handles[2*cmd.Index-1] = cmd.Out
	c.handles[2*cmd.Index] = cmd.In
	c.updateSegment(cmd.Index - 1)
}

// FlipCommand records a reversal of the curve's direction. Undoing it also
// undoes the command before it.
type FlipCommand struct{}

func (FlipCommand) revert(c *Curve) { c.Flip() }

// InsertSpanCommand records Count anchors inserted from a fitted stroke
// starting at anchor Index. First and Last hold the handles the span
// overwrote at its ends: the outgoing handle of anchor Index-1 and the
// incoming handle of the anchor the span was joined to.
type InsertSpanCommand struct {
	Index    int
	Count    int
	First    Point
	Last     Point
	HasFirst bool
	HasLast  bool
}

func (cmd InsertSpanCommand) revert(c *Curve) {
	for range cmd.Count {
		if c.AnchorCount() == 1 {
			c.Reset()
			break
		}
		c.DeleteAnchor(cmd.Index)
	}
	if cmd.HasFirst {
		c.MoveHandle(cmd.Index*2-1, cmd.First)
	}
	if cmd.HasLast {
		c.MoveHandle(cmd.Index*2, cmd.Last)
	}
}

// BeginMergeCommand opens the commands of one freehand merge.
type BeginMergeCommand struct{}

func (BeginMergeCommand) revert(*Curve) {}

// EndMergeCommand closes the commands of one freehand merge. Reversed is set
// when the merge ran on the flipped curve.
type EndMergeCommand struct {
	Reversed bool
}

func (EndMergeCommand) revert(*Curve) {}
