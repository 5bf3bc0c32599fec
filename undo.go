package bezier

import (
	"iter"
	"log/slog"
	"slices"
)

// UndoStack is an append-only log of committed commands. The zero value is
// an empty stack.
type UndoStack struct {
	cmds []Command
}

// Push records cmd as the most recent command.
func (s *UndoStack) Push(cmd Command) {
	s.cmds = append(s.cmds, cmd)
}

// Len returns the number of recorded commands.
func (s *UndoStack) Len() int { return len(s.cmds) }

// All returns the recorded commands, oldest first.
func (s *UndoStack) All() iter.Seq[Command] {
	return slices.Values(s.cmds)
}

// Clear drops all recorded commands.
func (s *UndoStack) Clear() {
	clear(s.cmds)
	s.cmds = s.cmds[:0]
}

func (s *UndoStack) pop() (Command, bool) {
	if len(s.cmds) == 0 {
		return nil, false
	}
	cmd := s.cmds[len(s.cmds)-1]
	s.cmds[len(s.cmds)-1] = nil
	s.cmds = s.cmds[:len(s.cmds)-1]
	return cmd, true
}

// Undo reverts the most recent user-visible edit on c and returns the number
// of commands left. A flip is undone together with the edit before it. A
// merge is undone as a whole: every command back to its opening marker is
// reverted, on the flipped curve if the merge ran reversed. Undo on an empty
// stack does nothing and returns 0.
func (s *UndoStack) Undo(c *Curve) int {
	cmd, ok := s.pop()
	if !ok {
		return 0
	}
	switch cmd := cmd.(type) {
	case FlipCommand:
		cmd.revert(c)
		return s.Undo(c)
	case EndMergeCommand:
		if cmd.Reversed {
			c.Flip()
		}
		for {
			inner, ok := s.pop()
			if !ok {
				break
			}
			if _, ok := inner.(BeginMergeCommand); ok {
				break
			}
			inner.revert(c)
		}
		if cmd.Reversed {
			c.Flip()
		}
	default:
		cmd.revert(c)
	}
	Logger().Debug("undo", slog.String("command", commandName(cmd)), slog.Int("depth", len(s.cmds)))
	return len(s.cmds)
}

func commandName(cmd Command) string {
	switch cmd.(type) {
	case AddAnchorCommand:
		return "add anchor"
	case MoveAnchorCommand:
		return "move anchor"
	case DeleteAnchorCommand:
		return "delete anchor"
	case ResetCommand:
		return "reset"
	case MoveHandleCommand:
		return "move handle"
	case DeleteHandleCommand:
		return "delete handle"
	case MirrorHandlesCommand:
		return "mirror handles"
	case InsertAnchorCommand:
		return "insert anchor"
	case FlipCommand:
		return "flip"
	case InsertSpanCommand:
		return "insert span"
	case BeginMergeCommand, EndMergeCommand:
		return "merge"
	default:
		panic("unreachable")
	}
}
