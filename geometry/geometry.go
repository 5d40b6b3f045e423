// Package geometry contains the shared geometric vocabulary for the
// orthodrag engine: canvas points, axis-aligned edge segments, and the
// scalar helpers the higher-level packages build on.
package geometry

import (
	"fmt"
	"math"
)

// GridSize is the logical snapping grid of the canvas.
const GridSize = 20.0

// Point represents a 2D coordinate in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Near reports whether p is within tolerance of q.
func (p Point) Near(q Point, tolerance float64) bool {
	return p.DistanceTo(q) <= tolerance
}

// Mid returns the arithmetic midpoint of p and q.
func Mid(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Direction represents the axis a segment runs along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Opposite returns the perpendicular direction.
func (d Direction) Opposite() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// DirectionBetween classifies the dominant axis of the line from start
// to end. Horizontal requires a strictly greater X delta; ties and
// zero-length lines classify as vertical.
func DirectionBetween(start, end Point) Direction {
	if math.Abs(end.X-start.X) > math.Abs(end.Y-start.Y) {
		return Horizontal
	}
	return Vertical
}

// EdgeSegment is one axis-aligned piece of a connector. The derived
// fields (Direction, Length, Midpoint) are recomputed whenever the
// endpoints change; ID is positional within one decomposition and is
// not a stable identity across rebuilds.
type EdgeSegment struct {
	ID        string
	Start     Point
	End       Point
	Direction Direction
	Length    float64
	Midpoint  Point
}

// NewSegment builds a segment with its derived fields populated.
func NewSegment(id string, start, end Point) EdgeSegment {
	return EdgeSegment{
		ID:        id,
		Start:     start,
		End:       end,
		Direction: DirectionBetween(start, end),
		Length:    start.DistanceTo(end),
		Midpoint:  Mid(start, end),
	}
}

// SegmentID returns the positional id for index i.
func SegmentID(i int) string {
	return fmt.Sprintf("segment-%d", i)
}

// Snap rounds v to the nearest multiple of grid. A non-positive grid
// leaves v unchanged.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Round(v/grid) * grid
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Cross returns the z component of (b-a) x (c-a). Zero means a, b and
// c are collinear.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Collinear reports whether b lies on the line through a and c, within
// tolerance on the cross product.
func Collinear(a, b, c Point, tolerance float64) bool {
	return math.Abs(Cross(a, b, c)) <= tolerance
}
