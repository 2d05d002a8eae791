// Package circuit defines the topology data model for an interactive circuit
// editor: components with typed pins, wires between pins, the component type
// registry, the connection validator, and the variant migration logic.
package circuit

import (
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/geometry"
)

// PinKind classifies what a pin electrically is. The set is closed; branching
// on kind happens only in the validator.
type PinKind int

const (
	KindPower PinKind = iota
	KindGround
	KindDigital
	KindAnalog
	KindPWM
	KindI2C
	KindSPI
)

var kindNames = map[PinKind]string{
	KindPower:   "power",
	KindGround:  "ground",
	KindDigital: "digital",
	KindAnalog:  "analog",
	KindPWM:     "pwm",
	KindI2C:     "i2c",
	KindSPI:     "spi",
}

func (k PinKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParsePinKind maps a kind name back to its PinKind. The second return is
// false for unrecognized names.
func ParsePinKind(name string) (PinKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// IsGPIO reports whether the kind is single-connection GPIO class
// (digital, analog or pwm).
func (k PinKind) IsGPIO() bool {
	return k == KindDigital || k == KindAnalog || k == KindPWM
}

// ViewMode selects one of the two coordinate projections of the circuit. Wire
// paths are cached independently per view.
type ViewMode int

const (
	ViewSchematic ViewMode = iota
	ViewBreadboard

	// ViewCount sizes per-view arrays.
	ViewCount
)

func (v ViewMode) String() string {
	switch v {
	case ViewSchematic:
		return "schematic"
	case ViewBreadboard:
		return "breadboard"
	}
	return "unknown"
}

// Pin is a named terminal on a component. Its ID is stable for the lifetime
// of the component unless the component changes variant, which replaces the
// pin list wholesale.
type Pin struct {
	ID     string
	Label  string
	Kind   PinKind
	Role   string // semantic tag, stable across variants (e.g. "pole1.com")
	Offset [ViewCount]geometry.Point
}

// Component is a placed part. Pin IDs within one component are unique.
type Component struct {
	ID       string
	Type     string
	Variant  string // empty for types without variants
	X        float64
	Y        float64
	Rotation int // degrees, one of 0, 90, 180, 270
	FlipX    bool
	FlipY    bool
	Pins     []Pin
	Props    map[string]any
}

// Pin returns the pin with the given id, or nil.
func (c *Component) Pin(pinID string) *Pin {
	for i := range c.Pins {
		if c.Pins[i].ID == pinID {
			return &c.Pins[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the component.
func (c *Component) Clone() *Component {
	out := *c
	out.Pins = append([]Pin(nil), c.Pins...)
	if c.Props != nil {
		out.Props = make(map[string]any, len(c.Props))
		for k, v := range c.Props {
			out.Props[k] = v
		}
	}
	return &out
}

// Endpoint identifies one end of a wire: a pin on a component.
type Endpoint struct {
	Component string
	Pin       string
}

// Wire is a directed logical connection between two pins. The routed path is
// cached per view mode and cleared whenever either endpoint component moves,
// rotates, flips or changes variant.
type Wire struct {
	ID    string
	From  Endpoint
	To    Endpoint
	Color string

	paths [ViewCount][]geometry.Point
}

// Touches reports whether either endpoint lies on the given component.
func (w *Wire) Touches(componentID string) bool {
	return w.From.Component == componentID || w.To.Component == componentID
}

// CachedPath returns the cached routed path for the view, or nil when the
// cache is cold.
func (w *Wire) CachedPath(view ViewMode) []geometry.Point {
	if view < 0 || view >= ViewCount {
		return nil
	}
	return w.paths[view]
}

// SetCachedPath stores a routed path for the view.
func (w *Wire) SetCachedPath(view ViewMode, path []geometry.Point) {
	if view < 0 || view >= ViewCount {
		return
	}
	w.paths[view] = path
}

// ClearPaths drops the cached paths for every view.
func (w *Wire) ClearPaths() {
	for i := range w.paths {
		w.paths[i] = nil
	}
}

// Clone returns a deep copy of the wire, including cached paths.
func (w *Wire) Clone() *Wire {
	out := *w
	for i := range w.paths {
		out.paths[i] = append([]geometry.Point(nil), w.paths[i]...)
	}
	return &out
}

// Circuit is one snapshot of the editable graph. Lookups tolerate missing ids
// by returning nil; mutation goes through the store.
type Circuit struct {
	Components []*Component
	Wires      []*Wire
}

// NewCircuit returns an empty circuit.
func NewCircuit() *Circuit {
	return &Circuit{}
}

// Component returns the component with the given id, or nil.
func (c *Circuit) Component(id string) *Component {
	for _, comp := range c.Components {
		if comp.ID == id {
			return comp
		}
	}
	return nil
}

// Wire returns the wire with the given id, or nil.
func (c *Circuit) Wire(id string) *Wire {
	for _, w := range c.Wires {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// WiresTouching returns every wire with an endpoint on the component.
func (c *Circuit) WiresTouching(componentID string) []*Wire {
	var out []*Wire
	for _, w := range c.Wires {
		if w.Touches(componentID) {
			out = append(out, w)
		}
	}
	return out
}

// RemoveComponent deletes the component and every wire touching it.
// Unknown ids are a no-op.
func (c *Circuit) RemoveComponent(id string) {
	kept := c.Components[:0]
	for _, comp := range c.Components {
		if comp.ID != id {
			kept = append(kept, comp)
		}
	}
	c.Components = kept

	wires := c.Wires[:0]
	for _, w := range c.Wires {
		if !w.Touches(id) {
			wires = append(wires, w)
		}
	}
	c.Wires = wires
}

// RemoveWire deletes the wire with the given id. Unknown ids are a no-op.
func (c *Circuit) RemoveWire(id string) {
	kept := c.Wires[:0]
	for _, w := range c.Wires {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	c.Wires = kept
}

// Clone returns a deep copy of the circuit. History entries hold clones so a
// later edit can never alter a snapshot already pushed.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{
		Components: make([]*Component, len(c.Components)),
		Wires:      make([]*Wire, len(c.Wires)),
	}
	for i, comp := range c.Components {
		out.Components[i] = comp.Clone()
	}
	for i, w := range c.Wires {
		out.Wires[i] = w.Clone()
	}
	return out
}
