package circuit

import "github.com/OpenTraceLab/OpenTraceCircuit/pkg/geometry"

// Pin offsets are relative to the component anchor, which sits at the center
// of the footprint. Flips apply to the local offset first, then rotation.

// transformOffset maps a local pin offset into circuit space for the
// component's current orientation.
func (c *Component) transformOffset(p geometry.Point) geometry.Point {
	x, y := p.X, p.Y
	if c.FlipX {
		x = -x
	}
	if c.FlipY {
		y = -y
	}
	switch normalizeRotation(c.Rotation) {
	case 90:
		x, y = -y, x
	case 180:
		x, y = -x, -y
	case 270:
		x, y = y, -x
	}
	return geometry.Point{X: c.X + x, Y: c.Y + y}
}

// normalizeRotation clamps a rotation to {0, 90, 180, 270}.
func normalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg - deg%90
}

// PinPosition resolves a pin's absolute position in the given view. The
// second return is false when the pin does not exist.
func (c *Component) PinPosition(pinID string, view ViewMode) (geometry.Point, bool) {
	if view < 0 || view >= ViewCount {
		return geometry.Point{}, false
	}
	pin := c.Pin(pinID)
	if pin == nil {
		return geometry.Point{}, false
	}
	return c.transformOffset(pin.Offset[view]), true
}

// Bounds computes the component's axis-aligned footprint rectangle in the
// given view. Components with no registered footprint (unknown type, zero
// size) report false; callers treat that as "no obstacle", not a failure.
func (r *Registry) Bounds(c *Component, view ViewMode) (geometry.Rect, bool) {
	fp, ok := r.FootprintFor(c.Type, view)
	if !ok {
		return geometry.Rect{}, false
	}
	w, h := fp.W, fp.H
	switch normalizeRotation(c.Rotation) {
	case 90, 270:
		w, h = h, w
	}
	return geometry.Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}, true
}

// PinPosition resolves a pin on any component of the circuit. Missing
// components or pins report false.
func (c *Circuit) PinPosition(componentID, pinID string, view ViewMode) (geometry.Point, bool) {
	comp := c.Component(componentID)
	if comp == nil {
		return geometry.Point{}, false
	}
	return comp.PinPosition(pinID, view)
}
