package circuit

import (
	"fmt"
	"sync"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/geometry"
)

// Footprint is the unrotated body size of a component in one view.
type Footprint struct {
	W float64
	H float64
}

// PinSpec is the template a pin is stamped from when a component is placed or
// changes variant.
type PinSpec struct {
	ID     string
	Label  string
	Kind   PinKind
	Role   string
	Offset [ViewCount]geometry.Point
}

// VariantSpec is one alternate pin layout for a component type.
type VariantSpec struct {
	ID   string
	Pins []PinSpec
}

// Definition describes a component type. Adding a part to the editor is a
// registration of one of these, not new branching logic in the engine.
type Definition struct {
	Type      string
	Label     string
	Footprint [ViewCount]Footprint

	// FanOut marks types whose pins accept unlimited connections regardless
	// of kind. Junctions need this; GPIO rules would otherwise cap them.
	FanOut bool

	// Pins is the layout for types without variants. Variant types leave it
	// empty and list their layouts in Variants instead.
	Pins           []PinSpec
	Variants       []VariantSpec
	DefaultVariant string
}

// Variant returns the variant spec with the given id, or nil.
func (d *Definition) Variant(id string) *VariantSpec {
	for i := range d.Variants {
		if d.Variants[i].ID == id {
			return &d.Variants[i]
		}
	}
	return nil
}

// Registry maps component types to their definitions.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewRegistry returns a registry preloaded with the built-in part library.
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]*Definition)}
	for _, def := range builtinLibrary() {
		r.defs[def.Type] = def
	}
	return r
}

// Register adds or replaces a definition. Definitions with neither pins nor
// variants are rejected.
func (r *Registry) Register(def *Definition) error {
	if def == nil || def.Type == "" {
		return fmt.Errorf("circuit: definition missing type")
	}
	if len(def.Pins) == 0 && len(def.Variants) == 0 {
		return fmt.Errorf("circuit: definition %s has no pins", def.Type)
	}
	if len(def.Variants) > 0 && def.Variant(def.DefaultVariant) == nil {
		return fmt.Errorf("circuit: definition %s default variant %q not found", def.Type, def.DefaultVariant)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Type] = def
	return nil
}

// Lookup returns the definition for a component type.
func (r *Registry) Lookup(componentType string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[componentType]
	return def, ok
}

// Types returns the registered type names in unspecified order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.defs))
	for t := range r.defs {
		out = append(out, t)
	}
	return out
}

// PinsFor stamps the pin list for a type and variant. For variant types an
// empty variant selects the default. Unknown types or variants yield an error.
func (r *Registry) PinsFor(componentType, variant string) ([]Pin, error) {
	def, ok := r.Lookup(componentType)
	if !ok {
		return nil, fmt.Errorf("circuit: unknown component type %q", componentType)
	}
	specs := def.Pins
	if len(def.Variants) > 0 {
		if variant == "" {
			variant = def.DefaultVariant
		}
		v := def.Variant(variant)
		if v == nil {
			return nil, fmt.Errorf("circuit: type %s has no variant %q", componentType, variant)
		}
		specs = v.Pins
	}
	pins := make([]Pin, len(specs))
	for i, s := range specs {
		pins[i] = Pin{ID: s.ID, Label: s.Label, Kind: s.Kind, Role: s.Role, Offset: s.Offset}
	}
	return pins, nil
}

// FootprintFor returns the unrotated body size of a type in the given view.
// Unknown types report false rather than failing.
func (r *Registry) FootprintFor(componentType string, view ViewMode) (Footprint, bool) {
	def, ok := r.Lookup(componentType)
	if !ok || view < 0 || view >= ViewCount {
		return Footprint{}, false
	}
	fp := def.Footprint[view]
	if fp.W == 0 && fp.H == 0 {
		return Footprint{}, false
	}
	return fp, true
}

// FanOut reports whether the type's pins accept unlimited connections.
func (r *Registry) FanOut(componentType string) bool {
	def, ok := r.Lookup(componentType)
	return ok && def.FanOut
}

// NewComponent places a component of the given type at (x, y), stamping its
// pins from the registry. Variant types with an empty variant get the default.
func (r *Registry) NewComponent(id, componentType, variant string, x, y float64) (*Component, error) {
	def, ok := r.Lookup(componentType)
	if !ok {
		return nil, fmt.Errorf("circuit: unknown component type %q", componentType)
	}
	if len(def.Variants) > 0 && variant == "" {
		variant = def.DefaultVariant
	}
	pins, err := r.PinsFor(componentType, variant)
	if err != nil {
		return nil, err
	}
	return &Component{
		ID:      id,
		Type:    componentType,
		Variant: variant,
		X:       x,
		Y:       y,
		Pins:    pins,
		Props:   make(map[string]any),
	}, nil
}
