// pkg/physics/collision_test.go
package physics

import (
	"testing"

	"pgregory.net/rapid"
)

func TestRect_Overlaps(t *testing.T) {
	base := NewRect(Vector2D{}, Vector2D{X: 20, Y: 20})

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"identical", base, true},
		{"partial_overlap", NewRect(Vector2D{X: 15, Y: 5}, Vector2D{X: 20, Y: 20}), true},
		{"edge_touching_x", NewRect(Vector2D{X: 20, Y: 0}, Vector2D{X: 20, Y: 20}), false},
		{"edge_touching_y", NewRect(Vector2D{X: 0, Y: -20}, Vector2D{X: 20, Y: 20}), false},
		{"corner_touching", NewRect(Vector2D{X: 20, Y: 20}, Vector2D{X: 20, Y: 20}), false},
		{"separate", NewRect(Vector2D{X: 100, Y: 0}, Vector2D{X: 20, Y: 20}), false},
		{"contained", NewRect(Vector2D{X: 1, Y: 1}, Vector2D{X: 2, Y: 2}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tt.expected)
			}
			if got := tt.other.Overlaps(base); got != tt.expected {
				t.Errorf("Overlaps() is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	rect := Rect{
		Center: Vector2D{X: 10, Y: 10},
		Width:  20,
		Height: 20,
	}

	tests := []struct {
		name     string
		point    Vector2D
		expected bool
	}{
		{"center", Vector2D{X: 10, Y: 10}, true},
		{"min_corner_inclusive", Vector2D{X: 0, Y: 0}, true},
		{"max_corner_exclusive", Vector2D{X: 20, Y: 20}, false},
		{"outside", Vector2D{X: -1, Y: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestRect_Outside(t *testing.T) {
	window := NewRect(Vector2D{}, Vector2D{X: 100, Y: 50})

	if window.Outside(Vector2D{X: 50, Y: 25}) {
		t.Error("point on the boundary should not be outside")
	}
	if !window.Outside(Vector2D{X: 50.001, Y: 0}) {
		t.Error("point past the right edge should be outside")
	}
	if !window.Outside(Vector2D{X: 0, Y: -25.5}) {
		t.Error("point below the bottom edge should be outside")
	}
}

func TestRect_Corners(t *testing.T) {
	r := NewRect(Vector2D{X: 5, Y: -5}, Vector2D{X: 4, Y: 2})
	if r.Min() != (Vector2D{X: 3, Y: -6}) {
		t.Errorf("Min() = %v", r.Min())
	}
	if r.Max() != (Vector2D{X: 7, Y: -4}) {
		t.Errorf("Max() = %v", r.Max())
	}
	if moved := r.At(Vector2D{}); moved.Width != 4 || moved.Center != (Vector2D{}) {
		t.Errorf("At() = %v", moved)
	}
}

func TestCircle_Collides(t *testing.T) {
	tests := []struct {
		name     string
		circle1  Circle
		circle2  Circle
		expected bool
	}{
		{
			name:     "circles_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
			expected: false,
		},
		{
			name:     "circles_overlapping",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 5, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "circles_same_position",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 3},
			circle2:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 2},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.circle1.Collides(tt.circle2); got != tt.expected {
				t.Errorf("Circle.Collides() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCollide_Sides(t *testing.T) {
	wall := NewRect(Vector2D{}, Vector2D{X: 20, Y: 20})
	unit := Vector2D{X: 10, Y: 10}

	tests := []struct {
		name     string
		box      Rect
		expected Collision
	}{
		{"no_overlap", NewRect(Vector2D{X: 40, Y: 0}, unit), CollisionNone},
		{"touching_is_none", NewRect(Vector2D{X: 15, Y: 0}, unit), CollisionNone},
		{"left", NewRect(Vector2D{X: -13, Y: 0}, unit), CollisionLeft},
		{"right", NewRect(Vector2D{X: 13, Y: 0}, unit), CollisionRight},
		{"top", NewRect(Vector2D{X: 0, Y: 13}, unit), CollisionTop},
		{"bottom", NewRect(Vector2D{X: 0, Y: -13}, unit), CollisionBottom},
		{"inside", NewRect(Vector2D{X: 1, Y: 1}, unit), CollisionInside},
		// corner overlap resolves along the shallower axis
		{"corner_shallow_x", NewRect(Vector2D{X: -14, Y: 12}, unit), CollisionLeft},
		{"corner_shallow_y", NewRect(Vector2D{X: -12, Y: 14}, unit), CollisionTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collide(tt.box, wall); got != tt.expected {
				t.Errorf("Collide() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCollide_NoneIffNoOverlap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawRect(t, "a")
		b := drawRect(t, "b")
		side := Collide(a, b)
		if (side == CollisionNone) == a.Overlaps(b) {
			t.Fatalf("Collide() = %v but Overlaps() = %v", side, a.Overlaps(b))
		}
	})
}

func drawRect(t *rapid.T, label string) Rect {
	return Rect{
		Center: Vector2D{
			X: rapid.Float64Range(-100, 100).Draw(t, label+"_x"),
			Y: rapid.Float64Range(-100, 100).Draw(t, label+"_y"),
		},
		Width:  rapid.Float64Range(1, 80).Draw(t, label+"_w"),
		Height: rapid.Float64Range(1, 80).Draw(t, label+"_h"),
	}
}
