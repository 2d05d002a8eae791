// Package route produces orthogonal wire paths that keep clear of component
// bodies. Obstacles are padded component footprints; the router prefers a
// single-bend path and falls back to a grid search when that path is blocked.
package route

import (
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/geometry"
)

// ObstaclePadding keeps routed wires off component edges rather than letting
// them touch.
const ObstaclePadding = 12.0

// Obstacles derives the padded footprint rectangle of every component in the
// given view, skipping the ids in exclude (typically the two endpoints of the
// wire being routed). Components with no resolvable footprint contribute
// nothing.
func Obstacles(c *circuit.Circuit, reg *circuit.Registry, view circuit.ViewMode, exclude ...string) []geometry.Rect {
	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	var rects []geometry.Rect
	for _, comp := range c.Components {
		if skip[comp.ID] {
			continue
		}
		bounds, ok := reg.Bounds(comp, view)
		if !ok {
			continue
		}
		rects = append(rects, bounds.Pad(ObstaclePadding))
	}
	return rects
}
