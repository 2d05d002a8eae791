// Package store holds the authoritative circuit graph and applies the closed
// set of edit operations on it: placement, orientation, wiring gestures,
// variant changes, junction splits, and bounded undo/redo.
//
// The engine is single-threaded by design: every operation runs to completion
// before the next is accepted, and the router, validator and migrator are pure
// functions over the current snapshot.
package store

import (
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/route"
)

// DefaultHistoryLimit caps how many undo steps are retained; the oldest
// snapshots are evicted silently once the cap is exceeded.
const DefaultHistoryLimit = 50

// Tool is the active interaction mode. Changing tools never creates an undo
// point.
type Tool string

const (
	ToolSelect Tool = "select"
	ToolWire   Tool = "wire"
	ToolDelete Tool = "delete"
)

// gestureState models the two-phase wire gesture explicitly: either no wire
// is in flight, or a start endpoint has been recorded and awaits a commit.
type gestureState int

const (
	gestureIdle gestureState = iota
	gesturePending
)

// Store is the single mutation entry point for the circuit graph.
type Store struct {
	reg *circuit.Registry
	log *zap.Logger

	current   *circuit.Circuit
	selection string
	tool      Tool

	gesture     gestureState
	pendingFrom circuit.Endpoint

	grid   float64
	limit  int
	past   []snapshot
	future []snapshot
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithHistoryLimit overrides the undo depth.
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithGrid overrides the routing grid pitch.
func WithGrid(grid float64) Option {
	return func(s *Store) {
		if grid > 0 {
			s.grid = grid
		}
	}
}

// New creates an empty store backed by the given component registry.
func New(reg *circuit.Registry, opts ...Option) *Store {
	s := &Store{
		reg:     reg,
		log:     zap.NewNop(),
		current: circuit.NewCircuit(),
		tool:    ToolSelect,
		grid:    geometry.DefaultGrid,
		limit:   DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromCircuit creates a store seeded with an existing circuit, e.g. one
// loaded from a circuit description file. The circuit is adopted, not copied.
func NewFromCircuit(reg *circuit.Registry, c *circuit.Circuit, opts ...Option) *Store {
	s := New(reg, opts...)
	if c != nil {
		s.current = c
	}
	return s
}

// Circuit returns the current graph snapshot. Callers treat it as read-only;
// edits go through the store's operations.
func (s *Store) Circuit() *circuit.Circuit {
	return s.current
}

// Registry returns the component type registry the store was built with.
func (s *Store) Registry() *circuit.Registry {
	return s.reg
}

// Selection returns the selected component id, or "" when nothing is
// selected.
func (s *Store) Selection() string {
	return s.selection
}

// Tool returns the active tool.
func (s *Store) Tool() Tool {
	return s.tool
}

// PendingFrom reports the recorded start endpoint of an in-flight wire
// gesture. The second return is false when no gesture is active.
func (s *Store) PendingFrom() (circuit.Endpoint, bool) {
	if s.gesture != gesturePending {
		return circuit.Endpoint{}, false
	}
	return s.pendingFrom, true
}

// Obstacles lists the padded component footprints for the view, minus the
// excluded component ids.
func (s *Store) Obstacles(view circuit.ViewMode, exclude ...string) []geometry.Rect {
	return route.Obstacles(s.current, s.reg, view, exclude...)
}

// WirePath returns the rendered point list of a wire in the given view,
// routing and caching it when the cache is cold. Unknown wires, or wires
// whose endpoints cannot be resolved, yield nil.
func (s *Store) WirePath(wireID string, view circuit.ViewMode) []geometry.Point {
	w := s.current.Wire(wireID)
	if w == nil {
		return nil
	}
	if cached := w.CachedPath(view); cached != nil {
		return cached
	}
	start, ok := s.current.PinPosition(w.From.Component, w.From.Pin, view)
	if !ok {
		return nil
	}
	end, ok := s.current.PinPosition(w.To.Component, w.To.Pin, view)
	if !ok {
		return nil
	}
	obstacles := route.Obstacles(s.current, s.reg, view, w.From.Component, w.To.Component)
	path := route.Route(start, end, obstacles, s.grid)
	w.SetCachedPath(view, path)
	return path
}

// CanConnect reports whether the validator would accept one more wire
// endpoint on the pin.
func (s *Store) CanConnect(componentID, pinID string) bool {
	return s.current.CanConnectPin(s.reg, componentID, pinID)
}

// SelectComponent marks a component as selected. Selecting a missing id
// clears the selection. Not an undo point.
func (s *Store) SelectComponent(id string) {
	if s.current.Component(id) == nil {
		s.selection = ""
		return
	}
	s.selection = id
}

// ClearSelection deselects. Not an undo point.
func (s *Store) ClearSelection() {
	s.selection = ""
}

// SetTool switches the interaction mode. Not an undo point.
func (s *Store) SetTool(t Tool) {
	s.tool = t
}
