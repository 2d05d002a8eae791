// Package geometry provides grid snapping and the axis-aligned intersection
// tests used by the wire router.
package geometry

import "math"

// DefaultGrid is the routing grid pitch in circuit units.
const DefaultGrid = 10.0

// Point is a 2D coordinate in circuit space.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle. W and H are never negative.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Snap rounds v to the nearest multiple of grid. A grid of zero or less
// returns v unchanged.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Round(v/grid) * grid
}

// SnapPoint snaps both coordinates of p to the grid.
func SnapPoint(p Point, grid float64) Point {
	return Point{X: Snap(p.X, grid), Y: Snap(p.Y, grid)}
}

// Contains reports whether (x, y) lies inside or on the border of r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ContainsPoint reports whether p lies inside or on the border of r.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Pad grows r by m units on every side.
func (r Rect) Pad(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// segmentSamples is the number of interior samples used by
// SegmentIntersectsRect. Sampling can miss a segment that clips a rectangle
// corner between two samples; callers accept that as a precision/performance
// trade-off.
const segmentSamples = 20

// SegmentIntersectsRect reports whether the segment (x1,y1)-(x2,y2) passes
// through r. A bounding-box reject runs first, then the segment is sampled at
// a fixed resolution and each sample tested for containment.
func SegmentIntersectsRect(r Rect, x1, y1, x2, y2 float64) bool {
	if math.Max(x1, x2) < r.X || math.Min(x1, x2) > r.X+r.W {
		return false
	}
	if math.Max(y1, y2) < r.Y || math.Min(y1, y2) > r.Y+r.H {
		return false
	}
	for i := 0; i <= segmentSamples; i++ {
		t := float64(i) / segmentSamples
		if r.Contains(x1+(x2-x1)*t, y1+(y2-y1)*t) {
			return true
		}
	}
	return false
}

// PathIntersectsRect reports whether any segment of the polyline intersects r.
func PathIntersectsRect(r Rect, path []Point) bool {
	for i := 0; i+1 < len(path); i++ {
		if SegmentIntersectsRect(r, path[i].X, path[i].Y, path[i+1].X, path[i+1].Y) {
			return true
		}
	}
	return false
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// PathLength returns the total length of the polyline.
func PathLength(path []Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += math.Hypot(path[i+1].X-path[i].X, path[i+1].Y-path[i].Y)
	}
	return total
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
