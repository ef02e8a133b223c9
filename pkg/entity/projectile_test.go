// pkg/entity/projectile_test.go
package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/opd-ai/go-pursuit/pkg/physics"
)

func TestNewProjectile(t *testing.T) {
	size := physics.Vector2D{X: 5, Y: 5}

	tests := []struct {
		name        string
		origin      physics.Vector2D
		target      physics.Vector2D
		speed       float64
		expectedErr error
		expectedDir physics.Vector2D
	}{
		{
			name:        "aims_at_target",
			origin:      physics.Vector2D{X: 10, Y: 10},
			target:      physics.Vector2D{X: 10, Y: 30},
			speed:       300,
			expectedDir: physics.Vector2D{Y: 1},
		},
		{
			name:        "zero_length_aim",
			origin:      physics.Vector2D{X: 10, Y: 10},
			target:      physics.Vector2D{X: 10, Y: 10},
			speed:       300,
			expectedErr: ErrZeroLengthAiming,
		},
		{
			name:        "zero_speed",
			target:      physics.Vector2D{X: 1},
			speed:       0,
			expectedErr: ErrInvalidSpeed,
		},
		{
			name:        "nan_speed",
			target:      physics.Vector2D{X: 1},
			speed:       math.NaN(),
			expectedErr: ErrInvalidSpeed,
		},
		{
			name:        "inf_speed",
			target:      physics.Vector2D{X: 1},
			speed:       math.Inf(1),
			expectedErr: ErrInvalidSpeed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProjectile(7, tt.origin, tt.target, size, tt.speed)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("error = %v, expected %v", err, tt.expectedErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProjectile() error = %v", err)
			}
			if p.Direction != tt.expectedDir {
				t.Errorf("Direction = %v, expected %v", p.Direction, tt.expectedDir)
			}
			if p.OwnerID != 7 {
				t.Errorf("OwnerID = %d, expected 7", p.OwnerID)
			}
		})
	}
}

func TestProjectile_Advance(t *testing.T) {
	p, err := NewProjectile(1, physics.Vector2D{}, physics.Vector2D{X: 3, Y: 4}, physics.Vector2D{X: 5, Y: 5}, 100)
	if err != nil {
		t.Fatalf("NewProjectile() error = %v", err)
	}

	p.Advance(0.5)
	p.Advance(0.5)

	if math.Abs(p.Position.X-60) > 1e-9 || math.Abs(p.Position.Y-80) > 1e-9 {
		t.Errorf("Position = %v, expected (60, 80)", p.Position)
	}
	if p.Age != 1 {
		t.Errorf("Age = %v, expected 1", p.Age)
	}
	if math.Abs(p.GetVelocity().Length()-100) > 1e-9 {
		t.Errorf("speed = %v, expected 100", p.GetVelocity().Length())
	}
}
