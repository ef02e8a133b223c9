// pkg/physics/collision.go
package physics

import "math"

// Rect represents an axis-aligned rectangle described by its center and full extents.
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// NewRect creates a rectangle centered at center with the given full size.
func NewRect(center, size Vector2D) Rect {
	return Rect{Center: center, Width: size.X, Height: size.Y}
}

// Half returns the half extents of the rectangle.
func (r Rect) Half() Vector2D {
	return Vector2D{X: r.Width / 2, Y: r.Height / 2}
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vector2D {
	return r.Center.Sub(r.Half())
}

// Max returns the top-right corner.
func (r Rect) Max() Vector2D {
	return r.Center.Add(r.Half())
}

// At returns a copy of the rectangle moved to center.
func (r Rect) At(center Vector2D) Rect {
	r.Center = center
	return r
}

func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X < r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y < r.Center.Y+r.Height/2
}

// Outside reports whether point lies strictly outside the rectangle on at least one axis.
func (r Rect) Outside(point Vector2D) bool {
	min, max := r.Min(), r.Max()
	return point.X < min.X || point.X > max.X || point.Y < min.Y || point.Y > max.Y
}

// Overlaps reports whether two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	aMin, aMax := r.Min(), r.Max()
	bMin, bMax := other.Min(), other.Max()
	return aMin.X < bMax.X && aMax.X > bMin.X &&
		aMin.Y < bMax.Y && aMax.Y > bMin.Y
}

// intersects is the inclusive variant of Overlaps used for broad-phase queries.
func (r Rect) intersects(other Rect) bool {
	aMin, aMax := r.Min(), r.Max()
	bMin, bMax := other.Min(), other.Max()
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y
}

// Circle represents a circular proximity shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are colliding
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// Collision names the side of the second box that the first box hit.
type Collision int

const (
	CollisionNone Collision = iota
	// CollisionLeft means the moving box is on the left side of the obstacle.
	CollisionLeft
	CollisionRight
	// CollisionTop means the moving box is above the obstacle.
	CollisionTop
	CollisionBottom
	// CollisionInside means neither axis has a partial overlap to push out along.
	CollisionInside
)

func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionInside:
		return "inside"
	default:
		return "none"
	}
}

// Collide reports on which side of b the box a collides, choosing the axis
// with the smaller penetration depth. It returns CollisionNone when the
// boxes do not overlap.
func Collide(a, b Rect) Collision {
	if !a.Overlaps(b) {
		return CollisionNone
	}

	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	xSide, xDepth := CollisionInside, math.Inf(1)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xDepth = CollisionLeft, aMax.X-bMin.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xDepth = CollisionRight, bMax.X-aMin.X
	}

	ySide, yDepth := CollisionInside, math.Inf(1)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = CollisionBottom, aMax.Y-bMin.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yDepth = CollisionTop, bMax.Y-aMin.Y
	}

	if yDepth < xDepth {
		return ySide
	}
	return xSide
}
