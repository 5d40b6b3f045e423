// Package render converts ordered point or segment lists into drawable
// SVG path descriptions: straight polylines, orthogonal polylines with
// optional rounded interior corners, or fully rounded paths. It is
// stateless apart from the default corner radius.
package render

import (
	"math"
	"strconv"
	"strings"

	"orthodrag/geometry"
)

// DefaultCornerRadius is the corner blend radius in canvas units.
const DefaultCornerRadius = 8.0

// EdgeType selects the rendering rule set for a connector.
type EdgeType int

const (
	EdgeStraight EdgeType = iota
	EdgeOrthogonal
	EdgeRounded
)

// String returns the string representation of an EdgeType.
func (t EdgeType) String() string {
	switch t {
	case EdgeStraight:
		return "straight"
	case EdgeOrthogonal:
		return "orthogonal"
	case EdgeRounded:
		return "rounded"
	default:
		return "unknown"
	}
}

// ParseEdgeType maps a style name onto an EdgeType, defaulting to
// orthogonal for anything unrecognized.
func ParseEdgeType(s string) EdgeType {
	switch s {
	case "straight":
		return EdgeStraight
	case "rounded":
		return EdgeRounded
	default:
		return EdgeOrthogonal
	}
}

// Options selects the path style for one render.
type Options struct {
	EdgeType     EdgeType
	Rounded      bool    // round interior corners of orthogonal paths
	CornerRadius float64 // DefaultCornerRadius if zero
}

// CalculatedPath is the engine's final output artifact: the drawable
// path plus the derived geometry the host may want alongside it.
type CalculatedPath struct {
	SVGPath     string                 `json:"svgPath"`
	Segments    []geometry.EdgeSegment `json:"-"`
	TotalLength float64                `json:"totalLength"`
	Waypoints   []geometry.Point       `json:"waypoints"`
}

// Calculator renders point and segment lists into path strings.
type Calculator struct {
	CornerRadius float64 // DefaultCornerRadius if zero
}

// NewCalculator returns a calculator with the default corner radius.
func NewCalculator() *Calculator {
	return &Calculator{CornerRadius: DefaultCornerRadius}
}

func (c *Calculator) radius(opts Options) float64 {
	if opts.CornerRadius > 0 {
		return opts.CornerRadius
	}
	if c.CornerRadius > 0 {
		return c.CornerRadius
	}
	return DefaultCornerRadius
}

// Calculate builds the full point list [source, controlPoints...,
// target], derives its segments, and renders the path per the options.
func (c *Calculator) Calculate(source, target geometry.Point, controlPoints []geometry.Point, opts Options) CalculatedPath {
	points := make([]geometry.Point, 0, len(controlPoints)+2)
	points = append(points, source)
	points = append(points, controlPoints...)
	points = append(points, target)

	return CalculatedPath{
		SVGPath:     c.renderPoints(points, opts),
		Segments:    segmentsFromPoints(points),
		TotalLength: totalLength(points),
		Waypoints:   points,
	}
}

// SegmentBasedPath renders a path directly from a segment list, used
// mid-drag where the segments are already known.
func (c *Calculator) SegmentBasedPath(segments []geometry.EdgeSegment, opts Options) string {
	return c.renderPoints(pointsFromSegments(segments), opts)
}

// UpdatePathAfterSegmentDrag moves the named segment's endpoints by the
// perpendicular-axis offset to newMidpoint, re-derives the shared
// endpoints of its neighbors, recomputes every segment's derived
// fields, and re-renders. An unknown id re-renders the geometry
// unchanged.
func (c *Calculator) UpdatePathAfterSegmentDrag(segments []geometry.EdgeSegment, draggedID string, newMidpoint geometry.Point, opts Options) CalculatedPath {
	out := make([]geometry.EdgeSegment, len(segments))
	copy(out, segments)

	idx := -1
	for i, s := range out {
		if s.ID == draggedID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		delta := newMidpoint.Sub(out[idx].Midpoint)
		if out[idx].Direction == geometry.Horizontal {
			delta.X = 0
		} else {
			delta.Y = 0
		}
		out[idx].Start = out[idx].Start.Add(delta)
		out[idx].End = out[idx].End.Add(delta)
		if idx > 0 {
			out[idx-1].End = out[idx].Start
		}
		if idx < len(out)-1 {
			out[idx+1].Start = out[idx].End
		}
	}
	for i := range out {
		out[i] = geometry.NewSegment(geometry.SegmentID(i), out[i].Start, out[i].End)
	}

	points := pointsFromSegments(out)
	return CalculatedPath{
		SVGPath:     c.renderPoints(points, opts),
		Segments:    out,
		TotalLength: totalLength(points),
		Waypoints:   points,
	}
}

// SegmentMidpoints returns the midpoint of each segment in order.
func SegmentMidpoints(segments []geometry.EdgeSegment) []geometry.Point {
	mids := make([]geometry.Point, len(segments))
	for i, s := range segments {
		mids[i] = s.Midpoint
	}
	return mids
}

// ControlPointsFromSegments recovers the interior waypoints from a
// contiguous segment list: the shared endpoints between consecutive
// segments, without the fixed source and target.
func ControlPointsFromSegments(segments []geometry.EdgeSegment) []geometry.Point {
	if len(segments) < 2 {
		return nil
	}
	points := make([]geometry.Point, 0, len(segments)-1)
	for _, s := range segments[:len(segments)-1] {
		points = append(points, s.End)
	}
	return points
}

// renderPoints emits the path string for the point list. Degenerate
// inputs yield an empty string rather than an error.
func (c *Calculator) renderPoints(points []geometry.Point, opts Options) string {
	if len(points) < 2 {
		return ""
	}
	switch opts.EdgeType {
	case EdgeStraight:
		return polyline(points)
	case EdgeRounded:
		return c.roundedPolyline(points, c.radius(opts))
	default: // EdgeOrthogonal
		if opts.Rounded {
			return c.roundedPolyline(points, c.radius(opts))
		}
		return polyline(points)
	}
}

// polyline emits M/L commands through every point.
func polyline(points []geometry.Point) string {
	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, points[0])
	for _, p := range points[1:] {
		b.WriteString(" L ")
		writePoint(&b, p)
	}
	return b.String()
}

// roundedPolyline blends each interior vertex with a quadratic curve.
// The radius is clamped to half of each adjacent segment's length so
// short segments never overshoot.
func (c *Calculator) roundedPolyline(points []geometry.Point, radius float64) string {
	if len(points) < 3 {
		return polyline(points)
	}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, points[0])

	for i := 1; i < len(points)-1; i++ {
		prev, cur, next := points[i-1], points[i], points[i+1]
		inLen := prev.DistanceTo(cur)
		outLen := cur.DistanceTo(next)
		r := math.Min(radius, math.Min(inLen/2, outLen/2))
		if r <= 0 || inLen == 0 || outLen == 0 {
			b.WriteString(" L ")
			writePoint(&b, cur)
			continue
		}

		entry := geometry.Point{
			X: cur.X + (prev.X-cur.X)*r/inLen,
			Y: cur.Y + (prev.Y-cur.Y)*r/inLen,
		}
		exit := geometry.Point{
			X: cur.X + (next.X-cur.X)*r/outLen,
			Y: cur.Y + (next.Y-cur.Y)*r/outLen,
		}
		b.WriteString(" L ")
		writePoint(&b, entry)
		b.WriteString(" Q ")
		writePoint(&b, cur)
		b.WriteString(" ")
		writePoint(&b, exit)
	}

	b.WriteString(" L ")
	writePoint(&b, points[len(points)-1])
	return b.String()
}

func totalLength(points []geometry.Point) float64 {
	var total float64
	for i := 0; i < len(points)-1; i++ {
		total += points[i].DistanceTo(points[i+1])
	}
	return total
}

func segmentsFromPoints(points []geometry.Point) []geometry.EdgeSegment {
	if len(points) < 2 {
		return nil
	}
	segments := make([]geometry.EdgeSegment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		segments = append(segments, geometry.NewSegment(geometry.SegmentID(i), points[i], points[i+1]))
	}
	return segments
}

func pointsFromSegments(segments []geometry.EdgeSegment) []geometry.Point {
	if len(segments) == 0 {
		return nil
	}
	points := make([]geometry.Point, 0, len(segments)+1)
	points = append(points, segments[0].Start)
	for _, s := range segments {
		points = append(points, s.End)
	}
	return points
}

func writePoint(b *strings.Builder, p geometry.Point) {
	b.WriteString(formatCoord(p.X))
	b.WriteString(" ")
	b.WriteString(formatCoord(p.Y))
}

// formatCoord prints a coordinate without trailing zeros.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
