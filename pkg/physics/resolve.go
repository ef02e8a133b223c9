// pkg/physics/resolve.go
package physics

// Obstacles supplies the static rectangles that may overlap an area.
// Implementations must return them in a stable obstacle order.
type Obstacles interface {
	Near(area Rect) []Rect
}

// RectList is a plain obstacle slice scanned in full.
type RectList []Rect

// Near returns every rectangle in the list.
func (l RectList) Near(Rect) []Rect {
	return l
}

// Resolve returns the displacement a dynamic box centered at position with
// half extents half may apply this tick given its intended delta.
//
// Each obstacle overlapping the box at position+delta is tested on its own.
// Only the component moving into the hit face is rewritten, so the box ends
// exactly flush with that face and the other axis is left untouched. When
// two obstacles correct the same axis the later one wins.
func Resolve(delta, position, half Vector2D, obstacles Obstacles) Vector2D {
	next := Rect{Center: position.Add(delta), Width: half.X * 2, Height: half.Y * 2}
	corrected := delta

	for _, obstacle := range obstacles.Near(next) {
		oHalf := obstacle.Half()

		switch Collide(next, obstacle) {
		case CollisionLeft:
			if delta.X > 0 {
				corrected.X = (obstacle.Center.X - oHalf.X) - (position.X + half.X)
			}
		case CollisionRight:
			if delta.X < 0 {
				corrected.X = (obstacle.Center.X + oHalf.X) - (position.X - half.X)
			}
		case CollisionTop:
			if delta.Y < 0 {
				corrected.Y = (obstacle.Center.Y + oHalf.Y) - (position.Y - half.Y)
			}
		case CollisionBottom:
			if delta.Y > 0 {
				corrected.Y = (obstacle.Center.Y - oHalf.Y) - (position.Y + half.Y)
			}
		}
	}

	return corrected
}
