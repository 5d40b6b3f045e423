// Package constraint enforces the movement rules for segment drags:
// axis locking, grid snapping, travel clamping, whole-path
// orthogonality validation and repair, and self-intersection checks.
// Violations are advisory data, never errors: every call returns a
// usable best-effort geometry plus the names of the rules it bent.
package constraint

import (
	"math"

	"orthodrag/drag"
	"orthodrag/geometry"
)

const (
	// OrthogonalTolerance is the allowed minor-axis drift before a
	// segment counts as non-orthogonal.
	OrthogonalTolerance = 2.0
	// MinSegmentLength is the smallest useful segment; a quarter of it
	// is the minimum drag travel.
	MinSegmentLength = 40.0
	// DefaultMaxTravel is a conservative ceiling on one drag, not a
	// computed bound.
	DefaultMaxTravel = 500.0
)

// Violation names reported in Result.Violated.
const (
	ViolationHorizontalSegmentXMovement = "horizontal-segment-x-movement"
	ViolationVerticalSegmentYMovement   = "vertical-segment-y-movement"
	ViolationMinimumDistance            = "minimum-distance"
	ViolationMaximumDistance            = "maximum-distance"
	ViolationSegmentNotFound            = "segment-not-found"
)

// Result is the outcome of one constraint application. AdjustedPosition
// is always usable; Valid just records whether any rule had to adjust
// the proposal.
type Result struct {
	Valid            bool
	AdjustedPosition geometry.Point
	Violated         []string
	Suggestions      []string
}

// Correction proposes a replacement end point that restores a
// non-orthogonal segment to a single axis.
type Correction struct {
	SegmentIndex int
	Point        geometry.Point
}

// Validation is the result of a whole-path orthogonality audit.
type Validation struct {
	IsOrthogonal          bool
	NonOrthogonalSegments []int
	Corrections           []Correction
}

// IntersectionReport lists the segments a hypothetical move would cross.
type IntersectionReport struct {
	HasIntersections     bool
	IntersectingSegments []string
}

// Engine applies the movement rules. Grid defaults to the canvas grid.
type Engine struct {
	Grid float64
}

// NewEngine returns an engine snapping to the default grid.
func NewEngine() *Engine {
	return &Engine{Grid: geometry.GridSize}
}

func (e *Engine) grid() float64 {
	if e.Grid > 0 {
		return e.Grid
	}
	return geometry.GridSize
}

// ApplyMovementConstraints adjusts a proposed midpoint so it obeys the
// segment's movement rules: the axis parallel to the segment is pinned
// to the original position, then the grid snap is applied if requested,
// then the travel distance from the original is clamped to
// [MinDistance, MaxDistance] along the movement direction.
func (e *Engine) ApplyMovementConstraints(original, proposed geometry.Point, segment geometry.EdgeSegment, constraints drag.Constraints) Result {
	res := Result{Valid: true, AdjustedPosition: proposed}

	if segment.Direction == geometry.Horizontal {
		if proposed.X != original.X {
			res.AdjustedPosition.X = original.X
			res.Violated = append(res.Violated, ViolationHorizontalSegmentXMovement)
			res.Suggestions = append(res.Suggestions, "horizontal segments only move vertically")
		}
	} else {
		if proposed.Y != original.Y {
			res.AdjustedPosition.Y = original.Y
			res.Violated = append(res.Violated, ViolationVerticalSegmentYMovement)
			res.Suggestions = append(res.Suggestions, "vertical segments only move horizontally")
		}
	}

	if constraints.SnapToGrid {
		res.AdjustedPosition.X = geometry.Snap(res.AdjustedPosition.X, e.grid())
		res.AdjustedPosition.Y = geometry.Snap(res.AdjustedPosition.Y, e.grid())
	}

	// Direction-preserving travel clamp. A zero-length move has no
	// direction to preserve and is left where it is.
	dist := original.DistanceTo(res.AdjustedPosition)
	if dist > 0 {
		unit := geometry.Point{
			X: (res.AdjustedPosition.X - original.X) / dist,
			Y: (res.AdjustedPosition.Y - original.Y) / dist,
		}
		if constraints.MinDistance > 0 && dist < constraints.MinDistance {
			res.AdjustedPosition = geometry.Point{
				X: original.X + unit.X*constraints.MinDistance,
				Y: original.Y + unit.Y*constraints.MinDistance,
			}
			res.Violated = append(res.Violated, ViolationMinimumDistance)
			res.Suggestions = append(res.Suggestions, "drag further to move the segment")
		}
		if constraints.MaxDistance > 0 && dist > constraints.MaxDistance {
			res.AdjustedPosition = geometry.Point{
				X: original.X + unit.X*constraints.MaxDistance,
				Y: original.Y + unit.Y*constraints.MaxDistance,
			}
			res.Violated = append(res.Violated, ViolationMaximumDistance)
			res.Suggestions = append(res.Suggestions, "segment travel is capped per drag")
		}
	}

	res.Valid = len(res.Violated) == 0
	return res
}

// ValidatePath audits every consecutive pair of the full point list and
// flags segments whose minor-axis delta exceeds OrthogonalTolerance,
// proposing a correction that snaps the end point onto the dominant
// axis of the start point.
func (e *Engine) ValidatePath(controlPoints []geometry.Point, source, target geometry.Point) Validation {
	points := fullPointList(controlPoints, source, target)
	v := Validation{IsOrthogonal: true}
	for i := 0; i < len(points)-1; i++ {
		if isAxisAligned(points[i], points[i+1]) {
			continue
		}
		v.IsOrthogonal = false
		v.NonOrthogonalSegments = append(v.NonOrthogonalSegments, i)
		v.Corrections = append(v.Corrections, Correction{
			SegmentIndex: i,
			Point:        axisCorrection(points[i], points[i+1]),
		})
	}
	return v
}

// EnforceOrthogonalConstraints walks the path from the source and snaps
// each interior waypoint onto the dominant axis of its (corrected)
// predecessor, returning the corrected interior waypoints. The fixed
// source and target are never moved.
func (e *Engine) EnforceOrthogonalConstraints(controlPoints []geometry.Point, source, target geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(controlPoints))
	copy(out, controlPoints)
	prev := source
	for i := range out {
		if !isAxisAligned(prev, out[i]) {
			out[i] = axisCorrection(prev, out[i])
		}
		prev = out[i]
	}
	return out
}

// SegmentConstraints derives the drag constraints for one segment: the
// movement axis perpendicular to its direction, a quarter of the
// minimum segment length as minimum travel, and the conservative
// travel ceiling.
func (e *Engine) SegmentConstraints(segment geometry.EdgeSegment, all []geometry.EdgeSegment, source, target geometry.Point) drag.Constraints {
	axis := drag.AxisY
	if segment.Direction == geometry.Vertical {
		axis = drag.AxisX
	}
	return drag.Constraints{
		Axis:        axis,
		SnapToGrid:  true,
		MinDistance: MinSegmentLength / 4,
		MaxDistance: DefaultMaxTravel,
	}
}

// ValidateSegmentMovement looks the segment up by id and applies its
// derived constraints to the proposed midpoint. An unknown id yields an
// advisory segment-not-found violation with the proposal untouched.
func (e *Engine) ValidateSegmentMovement(segmentID string, newMidpoint geometry.Point, all []geometry.EdgeSegment, source, target geometry.Point) Result {
	segment, ok := findSegment(segmentID, all)
	if !ok {
		return Result{
			Valid:            false,
			AdjustedPosition: newMidpoint,
			Violated:         []string{ViolationSegmentNotFound},
			Suggestions:      []string{"segment ids are positional; re-derive them after any topology change"},
		}
	}
	constraints := e.SegmentConstraints(segment, all, source, target)
	return e.ApplyMovementConstraints(segment.Midpoint, newMidpoint, segment, constraints)
}

// CheckPathIntersections moves the named segment to its hypothetical
// position (perpendicular axis only) and tests it against every other
// segment in the path. The report is an advisory signal, not a block.
func (e *Engine) CheckPathIntersections(segmentID string, newMidpoint geometry.Point, all []geometry.EdgeSegment) IntersectionReport {
	moved, ok := findSegment(segmentID, all)
	if !ok {
		return IntersectionReport{}
	}

	delta := newMidpoint.Sub(moved.Midpoint)
	if moved.Direction == geometry.Horizontal {
		delta.X = 0
	} else {
		delta.Y = 0
	}
	start := moved.Start.Add(delta)
	end := moved.End.Add(delta)

	var report IntersectionReport
	for _, s := range all {
		if s.ID == segmentID {
			continue
		}
		if segmentsIntersect(start, end, s.Start, s.End) {
			report.IntersectingSegments = append(report.IntersectingSegments, s.ID)
		}
	}
	report.HasIntersections = len(report.IntersectingSegments) > 0
	return report
}

func findSegment(id string, all []geometry.EdgeSegment) (geometry.EdgeSegment, bool) {
	for _, s := range all {
		if s.ID == id {
			return s, true
		}
	}
	return geometry.EdgeSegment{}, false
}

func fullPointList(controlPoints []geometry.Point, source, target geometry.Point) []geometry.Point {
	points := make([]geometry.Point, 0, len(controlPoints)+2)
	points = append(points, source)
	points = append(points, controlPoints...)
	points = append(points, target)
	return points
}

// isAxisAligned reports whether the minor-axis delta between two points
// stays within OrthogonalTolerance.
func isAxisAligned(start, end geometry.Point) bool {
	dx := math.Abs(end.X - start.X)
	dy := math.Abs(end.Y - start.Y)
	return math.Min(dx, dy) <= OrthogonalTolerance
}

// axisCorrection snaps end onto the dominant axis of the line from
// start, keeping the larger delta and discarding the smaller one.
func axisCorrection(start, end geometry.Point) geometry.Point {
	if geometry.DirectionBetween(start, end) == geometry.Horizontal {
		return geometry.Point{X: end.X, Y: start.Y}
	}
	return geometry.Point{X: start.X, Y: end.Y}
}
