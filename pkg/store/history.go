package store

import "github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"

// snapshot is one immutable history entry: the full graph plus the
// interaction state that is semantically part of the document. The circuit is
// deep-copied on push so later edits can never alter an entry retroactively.
type snapshot struct {
	circuit   *circuit.Circuit
	selection string
}

// pushHistory records the current state as an undo point and clears the redo
// stack. Every undoable operation calls this before mutating the graph.
func (s *Store) pushHistory() {
	s.past = append(s.past, snapshot{
		circuit:   s.current.Clone(),
		selection: s.selection,
	})
	if len(s.past) > s.limit {
		s.past = s.past[len(s.past)-s.limit:]
	}
	s.future = s.future[:0]
}

// CanUndo reports whether an undo point exists.
func (s *Store) CanUndo() bool {
	return len(s.past) > 0
}

// CanRedo reports whether a redo point exists.
func (s *Store) CanRedo() bool {
	return len(s.future) > 0
}

// Undo restores the most recent undo point, moving the current state onto the
// redo stack. With an empty past it is a no-op and returns false. Undo itself
// never creates an undo point.
func (s *Store) Undo() bool {
	if len(s.past) == 0 {
		return false
	}
	entry := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.future = append(s.future, snapshot{
		circuit:   s.current,
		selection: s.selection,
	})
	s.restore(entry)
	s.log.Debug("undo applied")
	return true
}

// Redo reverses the most recent undo. With an empty future it is a no-op and
// returns false.
func (s *Store) Redo() bool {
	if len(s.future) == 0 {
		return false
	}
	entry := s.future[len(s.future)-1]
	s.future = s.future[:len(s.future)-1]
	s.past = append(s.past, snapshot{
		circuit:   s.current,
		selection: s.selection,
	})
	s.restore(entry)
	s.log.Debug("redo applied")
	return true
}

func (s *Store) restore(entry snapshot) {
	s.current = entry.circuit
	s.selection = entry.selection
	// A restored graph may not contain the gesture's start component; the
	// in-flight gesture is abandoned rather than repaired.
	s.gesture = gestureIdle
	s.pendingFrom = circuit.Endpoint{}
	if s.selection != "" && s.current.Component(s.selection) == nil {
		s.selection = ""
	}
}
