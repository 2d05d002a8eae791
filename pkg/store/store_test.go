package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/geometry"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	return New(circuit.NewRegistry(), opts...)
}

func addComponent(t *testing.T, s *Store, id, typ string, x, y float64) {
	t.Helper()
	require.True(t, s.AddComponent(id, typ, "", x, y), "AddComponent(%s)", id)
}

func commitWire(t *testing.T, s *Store, fromComp, fromPin, toComp, toPin string) string {
	t.Helper()
	require.True(t, s.BeginWire(fromComp, fromPin), "BeginWire(%s.%s)", fromComp, fromPin)
	id, ok := s.CommitWire(toComp, toPin, "green")
	require.True(t, ok, "CommitWire(%s.%s)", toComp, toPin)
	return id
}

func TestAddComponent(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 100, 100)

	comp := s.Circuit().Component("R1")
	require.NotNil(t, comp)
	assert.Equal(t, "resistor", comp.Type)
	assert.Len(t, comp.Pins, 2)

	assert.False(t, s.AddComponent("R1", "resistor", "", 0, 0), "duplicate id accepted")
	assert.False(t, s.AddComponent("X1", "mystery", "", 0, 0), "unknown type accepted")
	assert.Len(t, s.Circuit().Components, 1)
}

func TestDeleteComponentCascades(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "MCU1", "mcu", 100, 400)
	addComponent(t, s, "LED1", "led", 300, 200)
	wireID := commitWire(t, s, "MCU1", "D2", "LED1", "A")

	s.SelectComponent("LED1")
	require.True(t, s.DeleteComponent("LED1"))

	assert.Nil(t, s.Circuit().Component("LED1"))
	assert.Nil(t, s.Circuit().Wire(wireID), "wire survived endpoint deletion")
	assert.Empty(t, s.Selection(), "selection survived deletion")

	assert.False(t, s.DeleteComponent("LED1"), "second delete applied")
}

func TestDeleteComponentAbandonsGesture(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 0)
	require.True(t, s.BeginWire("R1", "a"))
	require.True(t, s.DeleteComponent("R1"))

	_, pending := s.PendingFrom()
	assert.False(t, pending, "gesture survived start component deletion")
}

func TestSetVariantRemapsGesture(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "MCU1", "mcu", 400, 0)
	require.True(t, s.AddComponent("SW1", "switch", "dpdt", 0, 0))
	require.True(t, s.BeginWire("SW1", "com1"))

	_, ok := s.SetVariant("SW1", "spst")
	require.True(t, ok)

	// The pending start pin follows the migration like a wire endpoint would.
	from, pending := s.PendingFrom()
	require.True(t, pending)
	assert.Equal(t, circuit.Endpoint{Component: "SW1", Pin: "com"}, from)

	wireID, ok := s.CommitWire("MCU1", "D2", "")
	require.True(t, ok)
	assert.Equal(t, "com", s.Circuit().Wire(wireID).From.Pin)
}

func TestSetVariantAbandonsGestureOnUnmappedPin(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "MCU1", "mcu", 400, 0)
	require.True(t, s.AddComponent("SW1", "switch", "spdt", 0, 0))
	require.True(t, s.BeginWire("SW1", "nc"))

	// spst has no counterpart for nc; the gesture cannot survive.
	_, ok := s.SetVariant("SW1", "spst")
	require.True(t, ok)

	_, pending := s.PendingFrom()
	assert.False(t, pending, "gesture survived removal of its start pin")
	// No wire may be created from the removed pin.
	_, ok = s.CommitWire("MCU1", "D2", "")
	assert.False(t, ok, "commit from a removed pin accepted")
	assert.Empty(t, s.Circuit().Wires)
}

func TestGPIOPinSingleConnection(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "MCU1", "mcu", 100, 400)
	addComponent(t, s, "LED1", "led", 300, 200)
	addComponent(t, s, "LED2", "led", 300, 300)
	commitWire(t, s, "MCU1", "D2", "LED1", "A")

	assert.False(t, s.CanConnect("MCU1", "D2"), "used GPIO pin still connectable")

	before := len(s.Circuit().Wires)
	require.True(t, s.BeginWire("LED2", "A"))
	_, ok := s.CommitWire("MCU1", "D2", "red")
	assert.False(t, ok, "second connection to GPIO pin accepted")
	assert.Len(t, s.Circuit().Wires, before, "graph mutated by rejected commit")

	// A used GPIO pin cannot start a gesture either.
	s.CancelWire()
	assert.False(t, s.BeginWire("MCU1", "D2"))
}

func TestPowerGroundFanOut(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "MCU1", "mcu", 100, 400)
	addComponent(t, s, "LED1", "led", 300, 200)
	addComponent(t, s, "LED2", "led", 300, 300)

	commitWire(t, s, "MCU1", "GND.1", "LED1", "C")
	commitWire(t, s, "MCU1", "GND.1", "LED2", "C")

	assert.True(t, s.CanConnect("MCU1", "GND.1"), "ground pin refused a third connection")
	assert.Len(t, s.Circuit().Wires, 2)
}

func TestCommitWireRejections(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 0)
	addComponent(t, s, "R2", "resistor", 200, 0)

	// Commit without a gesture.
	_, ok := s.CommitWire("R2", "a", "")
	assert.False(t, ok)

	require.True(t, s.BeginWire("R1", "a"))

	// Self connection to the starting pin.
	_, ok = s.CommitWire("R1", "a", "")
	assert.False(t, ok)

	// Missing target.
	_, ok = s.CommitWire("R2", "z", "")
	assert.False(t, ok)

	// The gesture survives rejections and can still complete.
	_, ok = s.CommitWire("R2", "a", "blue")
	assert.True(t, ok)

	// Completed gestures are gone.
	_, ok = s.CommitWire("R2", "b", "")
	assert.False(t, ok)
}

func TestCancelWire(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 0)
	addComponent(t, s, "R2", "resistor", 200, 0)

	require.True(t, s.BeginWire("R1", "a"))
	s.CancelWire()

	_, pending := s.PendingFrom()
	assert.False(t, pending)
	_, ok := s.CommitWire("R2", "a", "")
	assert.False(t, ok, "commit succeeded after cancel")
	assert.Empty(t, s.Circuit().Wires)
}

func TestWirePathCachingAndInvalidation(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 50)
	addComponent(t, s, "R2", "resistor", 200, 50)
	wireID := commitWire(t, s, "R1", "b", "R2", "a")

	path := s.WirePath(wireID, circuit.ViewSchematic)
	require.NotEmpty(t, path)
	w := s.Circuit().Wire(wireID)
	require.NotNil(t, w.CachedPath(circuit.ViewSchematic), "path not cached")

	require.True(t, s.MoveComponent("R1", 0, 150))
	assert.Nil(t, w.CachedPath(circuit.ViewSchematic), "move left stale cached path")

	// Re-reading routes again from the new pin position.
	path = s.WirePath(wireID, circuit.ViewSchematic)
	require.NotEmpty(t, path)
	assert.Equal(t, geometry.Point{X: 30, Y: 150}, path[0])
}

func TestRotateAndFlipInvalidate(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 50)
	addComponent(t, s, "R2", "resistor", 200, 50)
	wireID := commitWire(t, s, "R1", "b", "R2", "a")
	w := s.Circuit().Wire(wireID)

	s.WirePath(wireID, circuit.ViewSchematic)
	require.True(t, s.RotateComponent("R1", 90))
	assert.Nil(t, w.CachedPath(circuit.ViewSchematic))

	s.WirePath(wireID, circuit.ViewSchematic)
	require.True(t, s.FlipComponent("R1", true, false))
	assert.Nil(t, w.CachedPath(circuit.ViewSchematic))
}

func TestWirePathRoutesAroundObstacle(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 50)
	addComponent(t, s, "R2", "resistor", 400, 50)
	// A component sitting right on the straight line between the pins.
	addComponent(t, s, "LED1", "led", 200, 50)
	wireID := commitWire(t, s, "R1", "b", "R2", "a")

	path := s.WirePath(wireID, circuit.ViewSchematic)
	require.NotEmpty(t, path)
	for _, obs := range s.Obstacles(circuit.ViewSchematic, "R1", "R2") {
		assert.False(t, geometry.PathIntersectsRect(obs, path),
			"path %v crosses obstacle %+v", path, obs)
	}
}

func TestUndoRedoSequence(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 0)
	addComponent(t, s, "R2", "resistor", 100, 0)
	addComponent(t, s, "R3", "resistor", 200, 0)

	for i := 0; i < 3; i++ {
		require.True(t, s.Undo(), "undo %d", i)
	}
	assert.Empty(t, s.Circuit().Components, "undo did not reach initial state")
	assert.False(t, s.Undo(), "undo with empty past applied")

	for i := 0; i < 3; i++ {
		require.True(t, s.Redo(), "redo %d", i)
	}
	assert.Len(t, s.Circuit().Components, 3)
	assert.False(t, s.Redo(), "redo with empty future applied")
}

func TestUndoRestoresPositions(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 0)
	require.True(t, s.MoveComponent("R1", 50, 50))
	require.True(t, s.MoveComponent("R1", 90, 90))

	require.True(t, s.Undo())
	comp := s.Circuit().Component("R1")
	assert.Equal(t, 50.0, comp.X)

	require.True(t, s.Undo())
	comp = s.Circuit().Component("R1")
	assert.Equal(t, 0.0, comp.X)
}

func TestNewEditClearsRedo(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 0)
	addComponent(t, s, "R2", "resistor", 100, 0)

	require.True(t, s.Undo())
	require.True(t, s.CanRedo())

	addComponent(t, s, "R3", "resistor", 200, 0)
	assert.False(t, s.CanRedo(), "redo survived a new edit")
	assert.False(t, s.Redo())
}

func TestHistoryLimitEvictsOldest(t *testing.T) {
	s := newTestStore(t, WithHistoryLimit(2))
	addComponent(t, s, "R1", "resistor", 0, 0)
	addComponent(t, s, "R2", "resistor", 100, 0)
	addComponent(t, s, "R3", "resistor", 200, 0)

	require.True(t, s.Undo())
	require.True(t, s.Undo())
	assert.False(t, s.Undo(), "evicted history entry still reachable")
	assert.Len(t, s.Circuit().Components, 1)
}

func TestSelectionNotUndoable(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 0)
	s.SelectComponent("R1")
	s.ClearSelection()
	s.SetTool(ToolWire)

	// Only the add created an undo point.
	require.True(t, s.Undo())
	assert.False(t, s.Undo())
	assert.Equal(t, ToolWire, s.Tool(), "tool mode rolled back by undo")
}

func TestSetVariantMigratesAndDetaches(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "MCU1", "mcu", 400, 0)
	require.True(t, s.AddComponent("SW1", "switch", "spdt", 0, 0))

	keptID := commitWire(t, s, "SW1", "com", "MCU1", "D2")
	dropID := commitWire(t, s, "SW1", "nc", "MCU1", "D3")

	result, ok := s.SetVariant("SW1", "spst")
	require.True(t, ok)
	assert.Equal(t, []string{dropID}, result.Detached)
	require.Len(t, result.Unmapped, 1)
	assert.Equal(t, "nc", result.Unmapped[0].PinID)

	sw := s.Circuit().Component("SW1")
	assert.Equal(t, "spst", sw.Variant)
	assert.Nil(t, sw.Pin("nc"), "spst layout still has nc pin")
	assert.NotNil(t, s.Circuit().Wire(keptID))
	assert.Nil(t, s.Circuit().Wire(dropID))

	// Undo brings back both the layout and the detached wire.
	require.True(t, s.Undo())
	sw = s.Circuit().Component("SW1")
	assert.Equal(t, "spdt", sw.Variant)
	assert.NotNil(t, sw.Pin("nc"))
	assert.NotNil(t, s.Circuit().Wire(dropID))
}

func TestSetVariantNoops(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.AddComponent("SW1", "switch", "spdt", 0, 0))

	_, ok := s.SetVariant("SW1", "spdt")
	assert.True(t, ok, "same-variant set rejected")

	// Only the add created an undo point; the no-op set did not.
	require.True(t, s.Undo())
	assert.False(t, s.CanUndo())

	_, ok = s.SetVariant("SW1", "bogus")
	assert.False(t, ok, "unknown variant accepted")
	_, ok = s.SetVariant("NOPE", "spst")
	assert.False(t, ok, "missing component accepted")
}

func TestSetPropUndoable(t *testing.T) {
	s := newTestStore(t)
	addComponent(t, s, "R1", "resistor", 0, 0)
	require.True(t, s.SetProp("R1", "resistance", 220.0))
	assert.Equal(t, 220.0, s.Circuit().Component("R1").Props["resistance"])

	require.True(t, s.Undo())
	_, ok := s.Circuit().Component("R1").Props["resistance"]
	assert.False(t, ok, "prop survived undo")
}
