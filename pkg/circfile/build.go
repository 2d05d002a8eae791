package circfile

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
)

// Build converts a parsed file into a circuit, stamping component pins from
// the registry. Unknown types, duplicate ids and wires referencing missing
// pins are errors here: a description file is authored input, so unlike the
// interactive editor we fail loudly instead of degrading to a no-op.
func (f *File) Build(reg *circuit.Registry) (*circuit.Circuit, error) {
	c := circuit.NewCircuit()

	for _, stmt := range f.Statements {
		cs := stmt.Component
		if cs == nil {
			continue
		}
		if c.Component(string(cs.ID)) != nil {
			return nil, fmt.Errorf("circfile: duplicate component id %q", cs.ID)
		}
		var (
			x, y    float64
			variant string
		)
		for _, clause := range cs.Clauses {
			if clause.At != nil {
				x, y = clause.At.X, clause.At.Y
			}
			if clause.Variant != nil {
				variant = string(*clause.Variant)
			}
		}
		comp, err := reg.NewComponent(string(cs.ID), string(cs.Type), variant, x, y)
		if err != nil {
			return nil, fmt.Errorf("circfile: component %s: %w", cs.ID, err)
		}
		for _, clause := range cs.Clauses {
			switch {
			case clause.Rotate != nil:
				comp.Rotation = ((*clause.Rotate % 360) + 360) % 360
			case clause.FlipX:
				comp.FlipX = true
			case clause.FlipY:
				comp.FlipY = true
			case clause.Prop != nil:
				comp.Props[string(clause.Prop.Key)] = clause.Prop.Value.Interface()
			}
		}
		c.Components = append(c.Components, comp)
	}

	for _, stmt := range f.Statements {
		ws := stmt.Wire
		if ws == nil {
			continue
		}
		if c.Wire(string(ws.ID)) != nil {
			return nil, fmt.Errorf("circfile: duplicate wire id %q", ws.ID)
		}
		from := circuit.Endpoint{Component: string(ws.FromComp), Pin: string(ws.FromPin)}
		to := circuit.Endpoint{Component: string(ws.ToComp), Pin: string(ws.ToPin)}
		for _, ep := range []circuit.Endpoint{from, to} {
			comp := c.Component(ep.Component)
			if comp == nil {
				return nil, fmt.Errorf("circfile: wire %s: unknown component %q", ws.ID, ep.Component)
			}
			if comp.Pin(ep.Pin) == nil {
				return nil, fmt.Errorf("circfile: wire %s: component %s has no pin %q", ws.ID, ep.Component, ep.Pin)
			}
		}
		w := &circuit.Wire{ID: string(ws.ID), From: from, To: to}
		if ws.Color != nil {
			w.Color = string(*ws.Color)
		}
		c.Wires = append(c.Wires, w)
	}

	return c, nil
}

// Load is the common path for the CLI: parse a file and build the circuit in
// one call.
func Load(path string, reg *circuit.Registry) (*circuit.Circuit, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return file.Build(reg)
}
