package constraint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orthodrag/drag"
	"orthodrag/geometry"
)

func TestApplyMovementConstraintsAxisLock(t *testing.T) {
	e := NewEngine()
	horizontal := geometry.NewSegment("segment-0", geometry.Point{X: 100, Y: 100}, geometry.Point{X: 200, Y: 100})

	res := e.ApplyMovementConstraints(
		geometry.Point{X: 150, Y: 100},
		geometry.Point{X: 180, Y: 140},
		horizontal,
		drag.Constraints{},
	)

	require.False(t, res.Valid)
	require.Equal(t, 150.0, res.AdjustedPosition.X, "X must be pinned to the original")
	require.Equal(t, 140.0, res.AdjustedPosition.Y)
	require.Contains(t, res.Violated, ViolationHorizontalSegmentXMovement)
	require.NotEmpty(t, res.Suggestions)
}

func TestApplyMovementConstraintsVertical(t *testing.T) {
	e := NewEngine()
	vertical := geometry.NewSegment("segment-1", geometry.Point{X: 200, Y: 100}, geometry.Point{X: 200, Y: 150})

	res := e.ApplyMovementConstraints(
		geometry.Point{X: 200, Y: 125},
		geometry.Point{X: 240, Y: 180},
		vertical,
		drag.Constraints{},
	)

	require.Equal(t, 125.0, res.AdjustedPosition.Y, "Y must be pinned to the original")
	require.Contains(t, res.Violated, ViolationVerticalSegmentYMovement)
}

func TestApplyMovementConstraintsGridSnap(t *testing.T) {
	e := NewEngine()
	vertical := geometry.NewSegment("segment-1", geometry.Point{X: 200, Y: 100}, geometry.Point{X: 200, Y: 140})

	res := e.ApplyMovementConstraints(
		geometry.Point{X: 200, Y: 120},
		geometry.Point{X: 217, Y: 120},
		vertical,
		drag.Constraints{SnapToGrid: true},
	)

	require.Equal(t, 220.0, res.AdjustedPosition.X)
	require.Equal(t, 120.0, res.AdjustedPosition.Y)
}

func TestApplyMovementConstraintsTravelClamp(t *testing.T) {
	e := NewEngine()
	vertical := geometry.NewSegment("segment-0", geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 100})
	original := geometry.Point{X: 0, Y: 50}

	t.Run("below minimum is pushed out", func(t *testing.T) {
		res := e.ApplyMovementConstraints(original, geometry.Point{X: 4, Y: 50}, vertical,
			drag.Constraints{MinDistance: 10})
		require.Contains(t, res.Violated, ViolationMinimumDistance)
		require.Equal(t, geometry.Point{X: 10, Y: 50}, res.AdjustedPosition)
	})

	t.Run("above maximum is clamped", func(t *testing.T) {
		res := e.ApplyMovementConstraints(original, geometry.Point{X: 800, Y: 50}, vertical,
			drag.Constraints{MaxDistance: 500})
		require.Contains(t, res.Violated, ViolationMaximumDistance)
		require.Equal(t, geometry.Point{X: 500, Y: 50}, res.AdjustedPosition)
	})

	t.Run("no movement needs no clamp", func(t *testing.T) {
		res := e.ApplyMovementConstraints(original, original, vertical,
			drag.Constraints{MinDistance: 10, MaxDistance: 500})
		require.True(t, res.Valid)
		require.Equal(t, original, res.AdjustedPosition)
	})
}

func TestValidatePath(t *testing.T) {
	e := NewEngine()
	source := geometry.Point{X: 0, Y: 0}
	target := geometry.Point{X: 200, Y: 100}

	t.Run("orthogonal path passes", func(t *testing.T) {
		v := e.ValidatePath([]geometry.Point{{X: 200, Y: 0}}, source, target)
		require.True(t, v.IsOrthogonal)
		require.Empty(t, v.NonOrthogonalSegments)
	})

	t.Run("diagonal leg is flagged with a correction", func(t *testing.T) {
		v := e.ValidatePath([]geometry.Point{{X: 100, Y: 40}}, source, target)
		require.False(t, v.IsOrthogonal)
		require.Equal(t, []int{0, 1}, v.NonOrthogonalSegments)
		// Correction snaps the end onto the dominant axis of the start.
		require.Equal(t, geometry.Point{X: 100, Y: 0}, v.Corrections[0].Point)
	})

	t.Run("small drift stays within tolerance", func(t *testing.T) {
		v := e.ValidatePath([]geometry.Point{{X: 100, Y: 2}, {X: 100, Y: 100}}, source, target)
		require.True(t, v.IsOrthogonal)
	})
}

func TestEnforceOrthogonalConstraints(t *testing.T) {
	e := NewEngine()
	source := geometry.Point{X: 0, Y: 0}
	target := geometry.Point{X: 200, Y: 100}

	corrected := e.EnforceOrthogonalConstraints(
		[]geometry.Point{{X: 100, Y: 30}, {X: 105, Y: 100}},
		source, target,
	)

	require.Equal(t, geometry.Point{X: 100, Y: 0}, corrected[0])
	// The second point is corrected against the already-corrected first.
	require.Equal(t, geometry.Point{X: 100, Y: 100}, corrected[1])
}

func TestSegmentConstraints(t *testing.T) {
	e := NewEngine()
	horizontal := geometry.NewSegment("segment-0", geometry.Point{}, geometry.Point{X: 100, Y: 0})
	vertical := geometry.NewSegment("segment-1", geometry.Point{X: 100, Y: 0}, geometry.Point{X: 100, Y: 80})

	ch := e.SegmentConstraints(horizontal, nil, geometry.Point{}, geometry.Point{})
	require.Equal(t, drag.AxisY, ch.Axis)
	require.Equal(t, 10.0, ch.MinDistance)
	require.Equal(t, 500.0, ch.MaxDistance)

	cv := e.SegmentConstraints(vertical, nil, geometry.Point{}, geometry.Point{})
	require.Equal(t, drag.AxisX, cv.Axis)
}

func TestValidateSegmentMovementUnknownID(t *testing.T) {
	e := NewEngine()
	proposed := geometry.Point{X: 50, Y: 50}

	res := e.ValidateSegmentMovement("segment-99", proposed, nil, geometry.Point{}, geometry.Point{})

	require.False(t, res.Valid)
	require.Equal(t, proposed, res.AdjustedPosition, "proposal passes through untouched")
	require.Equal(t, []string{ViolationSegmentNotFound}, res.Violated)
}

func TestCheckPathIntersections(t *testing.T) {
	e := NewEngine()

	// Dragging the horizontal segment down across a vertical one must
	// report the crossing; a far vertical stays clear.
	segments := []geometry.EdgeSegment{
		geometry.NewSegment("segment-0", geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 0}),
		geometry.NewSegment("segment-1", geometry.Point{X: 50, Y: 0}, geometry.Point{X: 50, Y: 100}),
		geometry.NewSegment("segment-2", geometry.Point{X: 300, Y: 0}, geometry.Point{X: 300, Y: 100}),
	}

	report := e.CheckPathIntersections("segment-0", geometry.Point{X: 50, Y: 50}, segments)
	require.True(t, report.HasIntersections)
	require.Contains(t, report.IntersectingSegments, "segment-1")
	require.NotContains(t, report.IntersectingSegments, "segment-2")

	clear := e.CheckPathIntersections("segment-0", geometry.Point{X: 50, Y: -50}, segments)
	require.False(t, clear.HasIntersections)

	missing := e.CheckPathIntersections("segment-9", geometry.Point{}, segments)
	require.False(t, missing.HasIntersections)
	require.Empty(t, missing.IntersectingSegments)
}
