// Package orthodrag is an interactive orthogonal edge-routing and
// segment-constraint engine for node/edge diagram editors. Given a
// connector between two fixed anchor points and its interior waypoints,
// it decomposes the connector into axis-aligned segments, lets the user
// drag one segment under orthogonality, grid and travel constraints,
// repairs the waypoint list when a drag would disconnect an endpoint,
// and renders the result as an SVG path description.
//
// The subpackages can be used directly; Engine composes them for the
// common pointer gesture: hit-test near a segment midpoint, start a
// drag, constrain each pointer move, guard endpoint connectivity,
// translate the adjacent waypoints, re-render, and commit on release.
package orthodrag

import (
	"orthodrag/config"
	"orthodrag/constraint"
	"orthodrag/drag"
	"orthodrag/geometry"
	"orthodrag/render"
	"orthodrag/waypoint"
)

// Edge is the connector geometry the engine operates on. It is owned by
// the host (the edge entity of the diagram); the engine only computes
// derived copies and never mutates the waypoints in place.
type Edge struct {
	Source        geometry.Point   `json:"source"`
	Target        geometry.Point   `json:"target"`
	ControlPoints []geometry.Point `json:"controlPoints"`
}

// Engine wires the drag handler, constraint engine, waypoint manager
// and path calculator together for one editor instance.
type Engine struct {
	Handler     *drag.Handler
	Constraints *constraint.Engine
	Waypoints   *waypoint.Manager
	Paths       *render.Calculator

	SnapToGrid       bool
	SimplifyOnCommit bool
	Options          render.Options
}

// NewEngine returns an engine with the default tunables.
func NewEngine() *Engine {
	return FromConfig(config.Defaults().Editor)
}

// FromConfig builds an engine from the persisted editor settings.
func FromConfig(cfg config.EditorConfig) *Engine {
	return &Engine{
		Handler:          &drag.Handler{HitThreshold: cfg.HitThreshold, Grid: cfg.GridSize},
		Constraints:      &constraint.Engine{Grid: cfg.GridSize},
		Waypoints:        waypoint.NewManager(),
		Paths:            &render.Calculator{CornerRadius: cfg.CornerRadius},
		SnapToGrid:       cfg.SnapToGrid,
		SimplifyOnCommit: cfg.SimplifyOnCommit,
		Options: render.Options{
			EdgeType:     render.ParseEdgeType(cfg.EdgeType),
			Rounded:      cfg.RoundedCorners,
			CornerRadius: cfg.CornerRadius,
		},
	}
}

// Segments decomposes the edge into consolidated drag targets.
func (e *Engine) Segments(edge Edge) []geometry.EdgeSegment {
	return e.Handler.Segments(edge.ControlPoints, edge.Source, edge.Target)
}

// Render draws the edge as it currently stands.
func (e *Engine) Render(edge Edge) render.CalculatedPath {
	return e.Paths.Calculate(edge.Source, edge.Target, edge.ControlPoints, e.Options)
}

// Gesture is one in-flight segment drag. It owns the session state, so
// independent engines and edges can drag concurrently.
type Gesture struct {
	edge    Edge
	segment geometry.EdgeSegment
	session *drag.Session

	// first/last record whether the dragged segment carries a fixed
	// handle, which is what decides reconnection indexing.
	first bool
	last  bool

	controlPoints []geometry.Point // latest repaired+translated waypoints
}

// ControlPoints returns the waypoints as of the latest pointer move.
func (g *Gesture) ControlPoints() []geometry.Point {
	return g.controlPoints
}

// Segment returns the segment the gesture is dragging.
func (g *Gesture) Segment() geometry.EdgeSegment {
	return g.segment
}

// BeginDrag hit-tests the pointer against the edge's segment midpoints
// and starts a drag on the first match. It returns false when the
// pointer is not near any midpoint.
func (e *Engine) BeginDrag(edge Edge, mouse geometry.Point) (*Gesture, bool) {
	segments := e.Segments(edge)
	segment, ok := e.Handler.FindTargetSegment(mouse, segments)
	if !ok {
		return nil, false
	}
	return &Gesture{
		edge:          edge,
		segment:       segment,
		session:       e.Handler.Start(segment, mouse),
		first:         segment.Start.Near(edge.Source, drag.MergeTolerance),
		last:          segment.End.Near(edge.Target, drag.MergeTolerance),
		controlPoints: append([]geometry.Point(nil), edge.ControlPoints...),
	}, true
}

// MoveDrag advances the gesture to a new pointer position and returns
// the preview geometry: the constrained midpoint is computed first,
// bridge waypoints are spliced in if the move would pull the segment
// off a fixed handle, the adjacent waypoints are translated, and the
// path is re-rendered. Returns false for stale or ended gestures.
func (e *Engine) MoveDrag(g *Gesture, mouse geometry.Point) (render.CalculatedPath, bool) {
	if g == nil {
		return render.CalculatedPath{}, false
	}
	state, ok := e.Handler.Update(g.session, mouse, g.segment, drag.Constraints{SnapToGrid: e.SnapToGrid})
	if !ok {
		return render.CalculatedPath{}, false
	}

	// Travel clamp on top of the handler's axis pin and anchored snap.
	cons := e.Constraints.SegmentConstraints(g.segment, nil, g.edge.Source, g.edge.Target)
	cons.SnapToGrid = false // already snapped relative to the drag start
	res := e.Constraints.ApplyMovementConstraints(state.StartPosition, state.ConstrainedPosition, g.segment, cons)
	midpoint := res.AdjustedPosition

	controlPoints := append([]geometry.Point(nil), g.edge.ControlPoints...)
	if g.first {
		ins := e.Waypoints.InsertPreservationWaypoints(0, midpoint, controlPoints, g.edge.Source, g.edge.Target)
		controlPoints = ins.NewControlPoints
	}
	// A consolidated segment can carry both handles at once, so the
	// target side gets its own pass against the last raw segment. When
	// there are no interior waypoints the source pass already analyzed
	// both handles in one call.
	if g.last && len(g.edge.ControlPoints) > 0 {
		ins := e.Waypoints.InsertPreservationWaypoints(len(controlPoints), midpoint, controlPoints, g.edge.Source, g.edge.Target)
		controlPoints = ins.NewControlPoints
	}

	g.controlPoints = e.Handler.UpdatedControlPoints(controlPoints, g.segment, midpoint, g.edge.Source, g.edge.Target)
	return e.Paths.Calculate(g.edge.Source, g.edge.Target, g.controlPoints, e.Options), true
}

// EndDrag finalizes the gesture and returns the committed edge for the
// host's undo/redo command. A gesture that never moved commits an
// unchanged copy. Returns false when the gesture was already ended or
// cancelled.
func (e *Engine) EndDrag(g *Gesture) (Edge, render.CalculatedPath, bool) {
	if g == nil {
		return Edge{}, render.CalculatedPath{}, false
	}
	if _, ok := e.Handler.End(g.session); !ok {
		return Edge{}, render.CalculatedPath{}, false
	}

	controlPoints := g.controlPoints
	if e.SimplifyOnCommit {
		controlPoints = e.Waypoints.Simplify(controlPoints, 0)
	}
	committed := Edge{Source: g.edge.Source, Target: g.edge.Target, ControlPoints: controlPoints}
	return committed, e.Render(committed), true
}

// CancelDrag abandons the gesture without committing; the host simply
// keeps rendering the original edge.
func (e *Engine) CancelDrag(g *Gesture) {
	if g != nil {
		e.Handler.End(g.session)
	}
}
