// Package drag decomposes a connector into axis-aligned segments and
// drives the segment drag gesture: hit-test, start, constrained update,
// end, and the resulting waypoint translation.
package drag

import (
	"math"

	"orthodrag/geometry"
)

const (
	// DefaultHitThreshold is the midpoint hit-test radius in canvas units.
	DefaultHitThreshold = 15.0
	// MergeTolerance is the coordinate slack when consolidating
	// collinear segment runs and matching waypoints to a segment.
	MergeTolerance = 2.0
)

// Handler builds segments from a waypoint list and runs drag gestures.
// It is stateless; gesture state lives in the Session the caller owns.
type Handler struct {
	HitThreshold float64 // midpoint hit radius, DefaultHitThreshold if zero
	Grid         float64 // snap grid, geometry.GridSize if zero
}

// NewHandler returns a handler with the default thresholds.
func NewHandler() *Handler {
	return &Handler{HitThreshold: DefaultHitThreshold, Grid: geometry.GridSize}
}

func (h *Handler) hitThreshold() float64 {
	if h.HitThreshold > 0 {
		return h.HitThreshold
	}
	return DefaultHitThreshold
}

func (h *Handler) grid() float64 {
	if h.Grid > 0 {
		return h.Grid
	}
	return geometry.GridSize
}

// Segments builds the consecutive segments of the full point list
// [source, controlPoints..., target], then consolidates runs of
// collinear, same-direction, same-sign segments into one logical
// segment. Ids are positional and reassigned after consolidation.
func (h *Handler) Segments(controlPoints []geometry.Point, source, target geometry.Point) []geometry.EdgeSegment {
	points := make([]geometry.Point, 0, len(controlPoints)+2)
	points = append(points, source)
	points = append(points, controlPoints...)
	points = append(points, target)

	raw := make([]geometry.EdgeSegment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		raw = append(raw, geometry.NewSegment(geometry.SegmentID(i), points[i], points[i+1]))
	}
	return consolidate(raw)
}

// consolidate merges adjacent mergeable segments left to right and
// reassigns positional ids. It never increases the segment count.
func consolidate(segments []geometry.EdgeSegment) []geometry.EdgeSegment {
	if len(segments) == 0 {
		return segments
	}
	out := make([]geometry.EdgeSegment, 0, len(segments))
	out = append(out, segments[0])
	for _, next := range segments[1:] {
		last := &out[len(out)-1]
		if mergeable(*last, next) {
			*last = geometry.NewSegment(last.ID, last.Start, next.End)
		} else {
			out = append(out, next)
		}
	}
	for i := range out {
		out[i].ID = geometry.SegmentID(i)
	}
	return out
}

// mergeable reports whether b can be absorbed into a. The segments must
// share a direction, be contiguous within MergeTolerance, agree on the
// sign of their displacement along the movement axis (a zero delta is
// compatible with either sign), and sit on the same cross-axis line.
// The sign rule keeps a path that doubles back (right then left) as two
// segments instead of collapsing it into one.
func mergeable(a, b geometry.EdgeSegment) bool {
	if a.Direction != b.Direction {
		return false
	}
	if !a.End.Near(b.Start, MergeTolerance) {
		return false
	}
	if a.Direction == geometry.Horizontal {
		return signCompatible(a.End.X-a.Start.X, b.End.X-b.Start.X) &&
			math.Abs(a.Start.Y-b.Start.Y) <= MergeTolerance
	}
	return signCompatible(a.End.Y-a.Start.Y, b.End.Y-b.Start.Y) &&
		math.Abs(a.Start.X-b.Start.X) <= MergeTolerance
}

func signCompatible(a, b float64) bool {
	return a == 0 || b == 0 || (a > 0) == (b > 0)
}

// NearMidpoint reports whether point is within threshold of the
// segment's midpoint. A non-positive threshold uses the default.
func NearMidpoint(point geometry.Point, segment geometry.EdgeSegment, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultHitThreshold
	}
	return point.Near(segment.Midpoint, threshold)
}

// FindTargetSegment returns the first segment whose midpoint is within
// the hit threshold of mouse. Orthogonal segments do not overlap in
// practice, so first match wins.
func (h *Handler) FindTargetSegment(mouse geometry.Point, segments []geometry.EdgeSegment) (geometry.EdgeSegment, bool) {
	for _, s := range segments {
		if NearMidpoint(mouse, s, h.hitThreshold()) {
			return s, true
		}
	}
	return geometry.EdgeSegment{}, false
}

// UpdatedControlPoints translates the waypoints that belong to the
// dragged segment by the midpoint delta, restricted to the segment's
// perpendicular axis, leaving every other waypoint untouched. The fixed
// source and target are not part of the list and never move; when the
// dragged segment is the first or last, only its single interior
// waypoint is affected. Waypoints are matched to the segment by
// coordinate (ids are positional and consolidation breaks index
// arithmetic), which also carries interior points of a consolidated run
// along with it. In a doubled-back path this moves every waypoint lying
// on the dragged span, not just the two adjacent ones, so the return
// leg stays orthogonal.
func (h *Handler) UpdatedControlPoints(original []geometry.Point, dragged geometry.EdgeSegment, newMidpoint geometry.Point, source, target geometry.Point) []geometry.Point {
	delta := newMidpoint.Sub(dragged.Midpoint)
	if dragged.Direction == geometry.Horizontal {
		delta.X = 0
	} else {
		delta.Y = 0
	}

	out := make([]geometry.Point, len(original))
	copy(out, original)
	if delta == (geometry.Point{}) {
		return out
	}
	for i, p := range out {
		if onSegmentSpan(p, dragged) {
			out[i] = p.Add(delta)
		}
	}
	return out
}

// onSegmentSpan reports whether p lies on the segment's line within
// MergeTolerance, inside its axis range.
func onSegmentSpan(p geometry.Point, s geometry.EdgeSegment) bool {
	if s.Direction == geometry.Horizontal {
		if math.Abs(p.Y-s.Start.Y) > MergeTolerance {
			return false
		}
		lo := math.Min(s.Start.X, s.End.X) - MergeTolerance
		hi := math.Max(s.Start.X, s.End.X) + MergeTolerance
		return p.X >= lo && p.X <= hi
	}
	if math.Abs(p.X-s.Start.X) > MergeTolerance {
		return false
	}
	lo := math.Min(s.Start.Y, s.End.Y) - MergeTolerance
	hi := math.Max(s.Start.Y, s.End.Y) + MergeTolerance
	return p.Y >= lo && p.Y <= hi
}
