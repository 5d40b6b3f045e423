package terminal

import (
	"testing"

	"orthodrag/geometry"
)

func TestCornerRune(t *testing.T) {
	tests := []struct {
		name            string
		prev, mid, next geometry.Point
		expected        rune
	}{
		{"right then down", geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 0}, geometry.Point{X: 100, Y: 100}, '┐'},
		{"right then up", geometry.Point{X: 0, Y: 100}, geometry.Point{X: 100, Y: 100}, geometry.Point{X: 100, Y: 0}, '┘'},
		{"left then down", geometry.Point{X: 100, Y: 0}, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 100}, '┌'},
		{"down then right", geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 100}, geometry.Point{X: 100, Y: 100}, '└'},
		{"straight horizontal", geometry.Point{X: 0, Y: 0}, geometry.Point{X: 50, Y: 0}, geometry.Point{X: 100, Y: 0}, '─'},
		{"straight vertical", geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 50}, geometry.Point{X: 0, Y: 100}, '│'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cornerRune(tt.prev, tt.mid, tt.next); got != tt.expected {
				t.Errorf("cornerRune = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCellScaling(t *testing.T) {
	x, y := cell(geometry.Point{X: 100, Y: 240})
	if x != 10 || y != 24 {
		t.Errorf("cell = (%d, %d), want (10, 24)", x, y)
	}
}
