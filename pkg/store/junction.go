package store

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/geometry"
)

// junctionReuseRadius: a split point this close to an existing junction
// reuses it instead of stacking a redundant one on top.
const junctionReuseRadius = 6.0

// InsertJunction splits a wire at a point lying on segmentIndex of its routed
// path in the given view. The original wire is replaced by two wires meeting
// at a zero-footprint junction component, each half keeping its part of the
// point list. The operation is a no-op when the wire or segment is invalid or
// when either half would be degenerate (shorter than one grid step). Returns
// the junction component id.
func (s *Store) InsertJunction(wireID string, view circuit.ViewMode, pt geometry.Point, segmentIndex int) (string, bool) {
	w := s.current.Wire(wireID)
	if w == nil {
		return "", false
	}
	path := s.WirePath(wireID, view)
	if segmentIndex < 0 || segmentIndex >= len(path)-1 {
		return "", false
	}

	// When an existing junction is close enough to reuse, the halves must
	// terminate at its pin, not at the raw split point.
	junctionID := s.nearbyJunction(pt, view)
	if junctionID != "" {
		if pos, ok := s.current.PinPosition(junctionID, circuit.JunctionPinID, view); ok {
			pt = pos
		}
	}

	firstHalf := make([]geometry.Point, 0, segmentIndex+2)
	firstHalf = append(firstHalf, path[:segmentIndex+1]...)
	firstHalf = append(firstHalf, pt)
	secondHalf := make([]geometry.Point, 0, len(path)-segmentIndex)
	secondHalf = append(secondHalf, pt)
	secondHalf = append(secondHalf, path[segmentIndex+1:]...)

	if geometry.PathLength(firstHalf) < s.grid || geometry.PathLength(secondHalf) < s.grid {
		s.log.Debug("junction split skipped: degenerate half", zap.String("wire", wireID))
		return "", false
	}

	s.pushHistory()

	if junctionID == "" {
		junctionID = "j-" + uuid.NewString()
		junction, err := s.reg.NewComponent(junctionID, circuit.TypeJunction, "", pt.X, pt.Y)
		if err != nil {
			// The junction type is built in; a registry without it cannot
			// split wires.
			s.past = s.past[:len(s.past)-1]
			s.log.Warn("junction type unavailable", zap.Error(err))
			return "", false
		}
		s.current.Components = append(s.current.Components, junction)
	}

	half1 := &circuit.Wire{
		ID:    "w-" + uuid.NewString(),
		From:  w.From,
		To:    circuit.Endpoint{Component: junctionID, Pin: circuit.JunctionPinID},
		Color: w.Color,
	}
	half1.SetCachedPath(view, firstHalf)
	half2 := &circuit.Wire{
		ID:    "w-" + uuid.NewString(),
		From:  circuit.Endpoint{Component: junctionID, Pin: circuit.JunctionPinID},
		To:    w.To,
		Color: w.Color,
	}
	half2.SetCachedPath(view, secondHalf)

	s.current.RemoveWire(wireID)
	s.current.Wires = append(s.current.Wires, half1, half2)
	s.log.Debug("wire split",
		zap.String("wire", wireID),
		zap.String("junction", junctionID),
		zap.String("half1", half1.ID),
		zap.String("half2", half2.ID))
	return junctionID, true
}

// nearbyJunction returns the id of a junction component within the reuse
// radius of pt in the given view, or "".
func (s *Store) nearbyJunction(pt geometry.Point, view circuit.ViewMode) string {
	for _, comp := range s.current.Components {
		if comp.Type != circuit.TypeJunction {
			continue
		}
		pos, ok := comp.PinPosition(circuit.JunctionPinID, view)
		if !ok {
			continue
		}
		if geometry.Dist(pos, pt) <= junctionReuseRadius {
			return comp.ID
		}
	}
	return ""
}
