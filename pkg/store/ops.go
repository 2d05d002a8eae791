package store

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
)

// Edit operations. Every undoable operation pushes a history entry before
// touching the graph; operations that reference a missing id leave the graph
// unchanged and report false. None of them panic or return errors — an
// interactive editor degrades to "no" rather than failing.

// AddComponent places a new component of the registered type at (x, y). An
// empty variant selects the type's default. Duplicate or unknown ids fail.
func (s *Store) AddComponent(id, componentType, variant string, x, y float64) bool {
	if id == "" || s.current.Component(id) != nil {
		return false
	}
	comp, err := s.reg.NewComponent(id, componentType, variant, x, y)
	if err != nil {
		s.log.Warn("add component rejected", zap.String("id", id), zap.Error(err))
		return false
	}
	s.pushHistory()
	s.current.Components = append(s.current.Components, comp)
	s.log.Debug("component added", zap.String("id", id), zap.String("type", componentType))
	return true
}

// DeleteComponent removes a component and cascades: every wire touching it is
// removed, the selection is cleared if it pointed at it, and a pending wire
// gesture starting on it is abandoned.
func (s *Store) DeleteComponent(id string) bool {
	if s.current.Component(id) == nil {
		return false
	}
	s.pushHistory()
	s.current.RemoveComponent(id)
	if s.selection == id {
		s.selection = ""
	}
	if s.gesture == gesturePending && s.pendingFrom.Component == id {
		s.gesture = gestureIdle
		s.pendingFrom = circuit.Endpoint{}
	}
	s.log.Debug("component deleted", zap.String("id", id))
	return true
}

// MoveComponent repositions a component and invalidates the cached paths of
// every wire touching it; their geometry assumed the old pin coordinates.
func (s *Store) MoveComponent(id string, x, y float64) bool {
	comp := s.current.Component(id)
	if comp == nil {
		return false
	}
	s.pushHistory()
	comp.X = x
	comp.Y = y
	s.invalidateTouching(id)
	s.log.Debug("component moved", zap.String("id", id), zap.Float64("x", x), zap.Float64("y", y))
	return true
}

// RotateComponent sets the rotation (normalized to 0/90/180/270) and
// invalidates touching wire paths.
func (s *Store) RotateComponent(id string, degrees int) bool {
	comp := s.current.Component(id)
	if comp == nil {
		return false
	}
	s.pushHistory()
	comp.Rotation = ((degrees % 360) + 360) % 360
	comp.Rotation -= comp.Rotation % 90
	s.invalidateTouching(id)
	s.log.Debug("component rotated", zap.String("id", id), zap.Int("rotation", comp.Rotation))
	return true
}

// FlipComponent sets the mirror flags and invalidates touching wire paths.
func (s *Store) FlipComponent(id string, flipX, flipY bool) bool {
	comp := s.current.Component(id)
	if comp == nil {
		return false
	}
	s.pushHistory()
	comp.FlipX = flipX
	comp.FlipY = flipY
	s.invalidateTouching(id)
	s.log.Debug("component flipped", zap.String("id", id), zap.Bool("flipX", flipX), zap.Bool("flipY", flipY))
	return true
}

// SetProp updates one type-specific attribute (pressed, resistance, ...).
func (s *Store) SetProp(id, key string, value any) bool {
	comp := s.current.Component(id)
	if comp == nil {
		return false
	}
	s.pushHistory()
	if comp.Props == nil {
		comp.Props = make(map[string]any)
	}
	comp.Props[key] = value
	return true
}

// BeginWire starts the two-phase wire gesture from the given pin. The
// validator gates the start as well: a used GPIO pin cannot begin a wire. Not
// an undo point; nothing is created until commit.
func (s *Store) BeginWire(componentID, pinID string) bool {
	if !s.current.CanConnectPin(s.reg, componentID, pinID) {
		s.log.Debug("begin wire rejected", zap.String("component", componentID), zap.String("pin", pinID))
		return false
	}
	s.gesture = gesturePending
	s.pendingFrom = circuit.Endpoint{Component: componentID, Pin: pinID}
	return true
}

// CancelWire abandons the in-flight gesture. Not an undo point.
func (s *Store) CancelWire() {
	s.gesture = gestureIdle
	s.pendingFrom = circuit.Endpoint{}
}

// CommitWire completes the gesture onto the target pin, creating a wire with
// a fresh id. The commit is rejected — graph untouched, gesture still pending
// — when no gesture is active, the target equals the start pin, or the
// validator denies the target.
func (s *Store) CommitWire(componentID, pinID, color string) (string, bool) {
	if s.gesture != gesturePending {
		return "", false
	}
	// The start pin may have vanished since BeginWire (variant change on
	// another path); a wire endpoint must always resolve.
	if from := s.current.Component(s.pendingFrom.Component); from == nil || from.Pin(s.pendingFrom.Pin) == nil {
		s.log.Debug("commit rejected: stale start endpoint",
			zap.String("component", s.pendingFrom.Component), zap.String("pin", s.pendingFrom.Pin))
		s.gesture = gestureIdle
		s.pendingFrom = circuit.Endpoint{}
		return "", false
	}
	target := circuit.Endpoint{Component: componentID, Pin: pinID}
	if target == s.pendingFrom {
		s.log.Debug("commit rejected: self connection", zap.String("component", componentID), zap.String("pin", pinID))
		return "", false
	}
	if !s.current.CanConnectPin(s.reg, componentID, pinID) {
		s.log.Debug("commit rejected by validator", zap.String("component", componentID), zap.String("pin", pinID))
		return "", false
	}
	s.pushHistory()
	w := &circuit.Wire{
		ID:    "w-" + uuid.NewString(),
		From:  s.pendingFrom,
		To:    target,
		Color: color,
	}
	s.current.Wires = append(s.current.Wires, w)
	s.gesture = gestureIdle
	s.pendingFrom = circuit.Endpoint{}
	s.log.Debug("wire committed", zap.String("id", w.ID))
	return w.ID, true
}

// DeleteWire removes a wire.
func (s *Store) DeleteWire(id string) bool {
	if s.current.Wire(id) == nil {
		return false
	}
	s.pushHistory()
	s.current.RemoveWire(id)
	s.log.Debug("wire deleted", zap.String("id", id))
	return true
}

// SetWireColor recolors a wire. The routed path stays valid.
func (s *Store) SetWireColor(id, color string) bool {
	w := s.current.Wire(id)
	if w == nil {
		return false
	}
	s.pushHistory()
	w.Color = color
	return true
}

// SetVariant switches a component to another pin layout of its type. Wires on
// pins with a counterpart in the new layout are remapped; wires on pins with
// none are removed and reported in the result. Cached paths of every wire
// still attached are cleared. Setting the current variant again is a no-op.
func (s *Store) SetVariant(id, newVariant string) (circuit.MigrationResult, bool) {
	comp := s.current.Component(id)
	if comp == nil {
		return circuit.MigrationResult{}, false
	}
	if comp.Variant == newVariant {
		return circuit.MigrationResult{}, true
	}
	pins, err := s.reg.PinsFor(comp.Type, newVariant)
	if err != nil {
		s.log.Warn("set variant rejected", zap.String("id", id), zap.Error(err))
		return circuit.MigrationResult{}, false
	}
	s.pushHistory()
	oldVariant := comp.Variant
	result := s.current.MigrateWires(s.reg, id, oldVariant, newVariant)
	comp.Variant = newVariant
	comp.Pins = pins
	s.invalidateTouching(id)
	// An in-flight gesture starting on this component follows the same
	// migration as the wires: remapped pin, or abandoned when there is none.
	if s.gesture == gesturePending && s.pendingFrom.Component == id {
		if newID, ok := s.reg.MigrationMap(comp.Type, oldVariant, newVariant)[s.pendingFrom.Pin]; ok {
			s.pendingFrom.Pin = newID
		} else {
			s.gesture = gestureIdle
			s.pendingFrom = circuit.Endpoint{}
		}
	}
	if len(result.Detached) > 0 {
		s.log.Info("variant change detached wires",
			zap.String("id", id),
			zap.String("variant", newVariant),
			zap.Strings("wires", result.Detached))
	}
	return result, true
}

// invalidateTouching clears the cached paths of every wire with an endpoint
// on the component, for all views.
func (s *Store) invalidateTouching(componentID string) {
	for _, w := range s.current.WiresTouching(componentID) {
		w.ClearPaths()
	}
}
