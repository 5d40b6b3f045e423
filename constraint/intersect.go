package constraint

import (
	"math"

	"orthodrag/geometry"
)

// segmentsIntersect reports whether segments p1-p2 and p3-p4 intersect,
// using the orientation test with the collinear on-segment special
// cases.
func segmentsIntersect(p1, p2, p3, p4 geometry.Point) bool {
	d1 := orientation(p3, p4, p1)
	d2 := orientation(p3, p4, p2)
	d3 := orientation(p1, p2, p3)
	d4 := orientation(p1, p2, p4)

	if d1 != d2 && d3 != d4 {
		return true
	}
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

// orientation returns the turn direction of the triple (a, b, c):
// 1 clockwise, -1 counterclockwise, 0 collinear.
func orientation(a, b, c geometry.Point) int {
	cross := geometry.Cross(a, b, c)
	switch {
	case cross > 0:
		return -1
	case cross < 0:
		return 1
	default:
		return 0
	}
}

// onSegment reports whether the collinear point p falls within the
// bounding box of segment a-b.
func onSegment(a, b, p geometry.Point) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}
