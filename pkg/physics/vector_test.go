// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func TestVector2D_Arithmetic(t *testing.T) {
	a := Vector2D{X: 3, Y: 4}
	b := Vector2D{X: -1, Y: 2}

	if got := a.Add(b); got != (Vector2D{X: 2, Y: 6}) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); got != (Vector2D{X: 4, Y: 2}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Scale(0.5); got != (Vector2D{X: 1.5, Y: 2}) {
		t.Errorf("Scale() = %v", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length() = %v, expected 5", got)
	}
	if got := a.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared() = %v, expected 25", got)
	}
	if got := a.Distance(Vector2D{}); got != 5 {
		t.Errorf("Distance() = %v, expected 5", got)
	}
}

func TestVector2D_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		expected Vector2D
	}{
		{"axis_aligned", Vector2D{X: 10, Y: 0}, Vector2D{X: 1, Y: 0}},
		{"negative_axis", Vector2D{X: 0, Y: -3}, Vector2D{X: 0, Y: -1}},
		{"diagonal_345", Vector2D{X: 3, Y: 4}, Vector2D{X: 0.6, Y: 0.8}},
		{"zero_vector_stays_zero", Vector2D{}, Vector2D{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if math.Abs(got.X-tt.expected.X) > 1e-12 || math.Abs(got.Y-tt.expected.Y) > 1e-12 {
				t.Errorf("Normalize() = %v, expected %v", got, tt.expected)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Errorf("Normalize() produced NaN for %v", tt.v)
			}
		})
	}
}

func TestVector2D_IsZero(t *testing.T) {
	if !(Vector2D{}).IsZero() {
		t.Error("zero vector should report IsZero")
	}
	if (Vector2D{X: 1e-300}).IsZero() {
		t.Error("tiny vector should not report IsZero")
	}
}

func TestVector2D_AngleAndPerp(t *testing.T) {
	right := Vector2D{X: 1, Y: 0}
	if got := right.Angle(); got != 0 {
		t.Errorf("Angle() = %v, expected 0", got)
	}
	up := right.Perp()
	if up != (Vector2D{X: 0, Y: 1}) {
		t.Errorf("Perp() = %v, expected {0 1}", up)
	}
	if got := up.Angle(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Angle() = %v, expected pi/2", got)
	}
}

func TestVector2D_Lerp(t *testing.T) {
	v := Vector2D{X: 0, Y: 10}
	got := v.Lerp(Vector2D{X: 10, Y: 0}, 0.25)
	if got != (Vector2D{X: 2.5, Y: 7.5}) {
		t.Errorf("Lerp() = %v, expected {2.5 7.5}", got)
	}
}
