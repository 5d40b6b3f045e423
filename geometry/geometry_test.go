package geometry

import (
	"math"
	"testing"
)

func TestDirectionBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    Point
		end      Point
		expected Direction
	}{
		{"Pure horizontal", Point{0, 0}, Point{100, 0}, Horizontal},
		{"Pure vertical", Point{0, 0}, Point{0, 100}, Vertical},
		{"Dominant horizontal", Point{0, 0}, Point{100, 40}, Horizontal},
		{"Dominant vertical", Point{0, 0}, Point{40, 100}, Vertical},
		{"Diagonal tie is vertical", Point{0, 0}, Point{50, 50}, Vertical},
		{"Zero length is vertical", Point{10, 10}, Point{10, 10}, Vertical},
		{"Negative horizontal", Point{0, 0}, Point{-100, 10}, Horizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectionBetween(tt.start, tt.end); got != tt.expected {
				t.Errorf("DirectionBetween(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestDirectionInvariant(t *testing.T) {
	// direction is horizontal iff |dx| > |dy|, for arbitrary endpoints.
	pairs := []struct{ start, end Point }{
		{Point{0, 0}, Point{217, 132}},
		{Point{-50, 80}, Point{30, 81}},
		{Point{5, 5}, Point{5, -200}},
		{Point{1, 1}, Point{2, 2}},
	}
	for _, p := range pairs {
		s := NewSegment("segment-0", p.start, p.end)
		horizontal := math.Abs(p.end.X-p.start.X) > math.Abs(p.end.Y-p.start.Y)
		if (s.Direction == Horizontal) != horizontal {
			t.Errorf("segment %v->%v: direction %v contradicts deltas", p.start, p.end, s.Direction)
		}
	}
}

func TestNewSegmentDerivedFields(t *testing.T) {
	s := NewSegment("segment-3", Point{100, 100}, Point{200, 100})

	if s.ID != "segment-3" {
		t.Errorf("ID = %q, want segment-3", s.ID)
	}
	if s.Direction != Horizontal {
		t.Errorf("Direction = %v, want horizontal", s.Direction)
	}
	if s.Length != 100 {
		t.Errorf("Length = %v, want 100", s.Length)
	}
	if (s.Midpoint != Point{150, 100}) {
		t.Errorf("Midpoint = %v, want {150 100}", s.Midpoint)
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		v, grid, expected float64
	}{
		{217, 20, 220},
		{132, 20, 140},
		{17, 20, 20},
		{9, 20, 0},
		{-17, 20, -20},
		{50, 20, 60}, // halves round away from zero
	}

	for _, tt := range tests {
		if got := Snap(tt.v, tt.grid); got != tt.expected {
			t.Errorf("Snap(%v, %v) = %v, want %v", tt.v, tt.grid, got, tt.expected)
		}
	}

	if got := Snap(37, 0); got != 37 {
		t.Errorf("Snap with zero grid = %v, want unchanged", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 10, 20); got != 10 {
		t.Errorf("Clamp below = %v, want 10", got)
	}
	if got := Clamp(25, 10, 20); got != 20 {
		t.Errorf("Clamp above = %v, want 20", got)
	}
	if got := Clamp(15, 10, 20); got != 15 {
		t.Errorf("Clamp inside = %v, want 15", got)
	}
}

func TestCollinear(t *testing.T) {
	a, b, c := Point{0, 0}, Point{50, 0}, Point{100, 0}
	if !Collinear(a, b, c, 0) {
		t.Error("points on one line should be collinear")
	}
	if Collinear(Point{0, 0}, Point{50, 10}, Point{100, 0}, 5) {
		t.Error("bent chain should not be collinear")
	}
}

func TestDirectionOpposite(t *testing.T) {
	if Horizontal.Opposite() != Vertical || Vertical.Opposite() != Horizontal {
		t.Error("Opposite should swap axes")
	}
	if Horizontal.String() != "horizontal" || Vertical.String() != "vertical" {
		t.Error("unexpected Direction string")
	}
}
