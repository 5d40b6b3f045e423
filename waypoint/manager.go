// Package waypoint keeps a dragged path connected to its fixed
// endpoints and minimal afterwards. Only the first segment can pull
// away from the source handle and only the last from the target; when
// a drag would do so, a single orthogonal bridge waypoint per affected
// handle is spliced in so the path stays continuous and axis-aligned.
package waypoint

import (
	"math"

	"orthodrag/geometry"
)

const (
	// ConnectionTolerance is how far a segment endpoint may drift from
	// its fixed handle before the path counts as disconnected.
	ConnectionTolerance = 5.0
	// DefaultSimplifyTolerance is the collinearity cross-product slack
	// used by Simplify when the caller passes a non-positive tolerance.
	DefaultSimplifyTolerance = 5.0
)

// Handle names the fixed endpoints of a connector.
type Handle int

const (
	HandleSource Handle = iota
	HandleTarget
)

// String returns the string representation of a Handle.
func (h Handle) String() string {
	if h == HandleSource {
		return "source"
	}
	return "target"
}

// Analysis predicts whether a segment drag would disconnect the path
// from its fixed handles, and which bridge segments would restore it.
type Analysis struct {
	WouldDisconnect        bool
	AffectedHandles        []Handle
	RequiredBridgeSegments []geometry.EdgeSegment
}

// InsertionResult is the outcome of a reconnection pass. When nothing
// would disconnect, RequiresInsertion is false and NewControlPoints is
// a copy of the input.
type InsertionResult struct {
	NewControlPoints  []geometry.Point
	InsertedWaypoints []geometry.Point
	ModifiedSegments  []int
	RequiresInsertion bool
}

// Manager runs the reconnection and cleanup rules.
type Manager struct {
	Tolerance float64 // connection tolerance, ConnectionTolerance if zero
}

// NewManager returns a manager with the default tolerance.
func NewManager() *Manager {
	return &Manager{Tolerance: ConnectionTolerance}
}

func (m *Manager) tolerance() float64 {
	if m.Tolerance > 0 {
		return m.Tolerance
	}
	return ConnectionTolerance
}

// AnalyzeConnectionImpact predicts the effect of moving the segment at
// segmentIndex (pre-consolidation indexing: segment i runs from point i
// to point i+1 of [source, controlPoints..., target]) to newMidpoint.
// Interior segments never disconnect anything: only interior waypoints
// move. For the first and last segment the hypothetical endpoint is
// translated along the segment's perpendicular axis and compared to the
// fixed handle.
func (m *Manager) AnalyzeConnectionImpact(segmentIndex int, newMidpoint geometry.Point, controlPoints []geometry.Point, source, target geometry.Point) Analysis {
	points := fullPointList(controlPoints, source, target)
	lastIndex := len(points) - 2
	if segmentIndex < 0 || segmentIndex > lastIndex {
		return Analysis{}
	}

	var a Analysis
	if segmentIndex == 0 {
		moved := movedEndpoint(points[0], points[1], newMidpoint, points[0])
		if source.DistanceTo(moved) > m.tolerance() {
			a.WouldDisconnect = true
			a.AffectedHandles = append(a.AffectedHandles, HandleSource)
			bridge := bridgePoint(source, moved)
			a.RequiredBridgeSegments = append(a.RequiredBridgeSegments,
				geometry.NewSegment("bridge-source", source, bridge),
				geometry.NewSegment("bridge-source-join", bridge, moved))
		}
	}
	if segmentIndex == lastIndex {
		moved := movedEndpoint(points[lastIndex], points[lastIndex+1], newMidpoint, points[lastIndex+1])
		if target.DistanceTo(moved) > m.tolerance() {
			a.WouldDisconnect = true
			a.AffectedHandles = append(a.AffectedHandles, HandleTarget)
			bridge := bridgePoint(target, moved)
			a.RequiredBridgeSegments = append(a.RequiredBridgeSegments,
				geometry.NewSegment("bridge-target-join", moved, bridge),
				geometry.NewSegment("bridge-target", bridge, target))
		}
	}
	return a
}

// InsertPreservationWaypoints splices one bridge waypoint per affected
// handle into the control-point list so the path stays connected. The
// call is an idempotent no-op when no disconnection is predicted.
func (m *Manager) InsertPreservationWaypoints(segmentIndex int, newMidpoint geometry.Point, controlPoints []geometry.Point, source, target geometry.Point) InsertionResult {
	analysis := m.AnalyzeConnectionImpact(segmentIndex, newMidpoint, controlPoints, source, target)

	out := make([]geometry.Point, len(controlPoints))
	copy(out, controlPoints)
	if !analysis.WouldDisconnect {
		return InsertionResult{NewControlPoints: out}
	}

	points := fullPointList(controlPoints, source, target)
	lastIndex := len(points) - 2
	res := InsertionResult{RequiresInsertion: true}

	for _, h := range analysis.AffectedHandles {
		switch h {
		case HandleSource:
			moved := movedEndpoint(points[0], points[1], newMidpoint, points[0])
			bridge := bridgePoint(source, moved)
			out = append([]geometry.Point{bridge}, out...)
			res.InsertedWaypoints = append(res.InsertedWaypoints, bridge)
			res.ModifiedSegments = append(res.ModifiedSegments, 0)
		case HandleTarget:
			moved := movedEndpoint(points[lastIndex], points[lastIndex+1], newMidpoint, points[lastIndex+1])
			bridge := bridgePoint(target, moved)
			out = append(out, bridge)
			res.InsertedWaypoints = append(res.InsertedWaypoints, bridge)
			res.ModifiedSegments = append(res.ModifiedSegments, lastIndex)
		}
	}
	res.NewControlPoints = out
	return res
}

// Simplify removes interior waypoints that are collinear with their
// immediate neighbors within tolerance. Safe to run repeatedly.
func (m *Manager) Simplify(controlPoints []geometry.Point, tolerance float64) []geometry.Point {
	if tolerance <= 0 {
		tolerance = DefaultSimplifyTolerance
	}
	if len(controlPoints) < 3 {
		out := make([]geometry.Point, len(controlPoints))
		copy(out, controlPoints)
		return out
	}

	out := make([]geometry.Point, 0, len(controlPoints))
	out = append(out, controlPoints[0])
	for i := 1; i < len(controlPoints)-1; i++ {
		if !CanMerge(out[len(out)-1], controlPoints[i], controlPoints[i+1], tolerance) {
			out = append(out, controlPoints[i])
		}
	}
	out = append(out, controlPoints[len(controlPoints)-1])
	return out
}

// Cleanup retains a waypoint only where the path direction actually
// changes. This is stronger than collinearity: it also drops waypoints
// that are numerically off the line but directionally redundant. Kept
// separate from Simplify on purpose; the two rules serve different
// call sites (general simplification vs. post-reconnection structural
// cleanup).
func (m *Manager) Cleanup(controlPoints []geometry.Point, source, target geometry.Point) []geometry.Point {
	out := make([]geometry.Point, 0, len(controlPoints))
	prev := source
	for i, p := range controlPoints {
		next := target
		if i+1 < len(controlPoints) {
			next = controlPoints[i+1]
		}
		if geometry.DirectionBetween(prev, p) != geometry.DirectionBetween(p, next) {
			out = append(out, p)
			prev = p
		}
	}
	return out
}

// CanMerge reports whether b is collinear with a and c within
// tolerance, i.e. removing b keeps the path shape.
func CanMerge(a, b, c geometry.Point, tolerance float64) bool {
	return geometry.Collinear(a, b, c, tolerance)
}

// movedEndpoint translates endpoint along the perpendicular axis of
// the segment start-end by the same delta that takes the segment's
// midpoint to newMidpoint.
func movedEndpoint(start, end, newMidpoint, endpoint geometry.Point) geometry.Point {
	delta := newMidpoint.Sub(geometry.Mid(start, end))
	if geometry.DirectionBetween(start, end) == geometry.Horizontal {
		delta.X = 0
	} else {
		delta.Y = 0
	}
	return endpoint.Add(delta)
}

// bridgePoint synthesizes the orthogonal bridge between a fixed handle
// and the moved segment endpoint: when the horizontal gap dominates,
// the bridge shares the segment's X and the handle's Y, otherwise the
// reverse.
func bridgePoint(handle, segmentPoint geometry.Point) geometry.Point {
	if math.Abs(handle.X-segmentPoint.X) > math.Abs(handle.Y-segmentPoint.Y) {
		return geometry.Point{X: segmentPoint.X, Y: handle.Y}
	}
	return geometry.Point{X: handle.X, Y: segmentPoint.Y}
}

func fullPointList(controlPoints []geometry.Point, source, target geometry.Point) []geometry.Point {
	points := make([]geometry.Point, 0, len(controlPoints)+2)
	points = append(points, source)
	points = append(points, controlPoints...)
	points = append(points, target)
	return points
}
