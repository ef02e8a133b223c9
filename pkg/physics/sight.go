// pkg/physics/sight.go
package physics

// CanSee ray-marches a check box with half extents boxHalf from viewer
// towards target. The march covers min(maxDistance, |target-viewer|) in
// increments of step, always finishing with a box at that limit.
//
// The first box that overlaps an obstacle blocks the view; the first
// box that overlaps the target collider establishes it. A march that
// ends without either result does not see the target.
func CanSee(viewer, target, targetHalf, boxHalf Vector2D, obstacles Obstacles, step, maxDistance float64) bool {
	toTarget := target.Sub(viewer)
	distance := toTarget.Length()
	direction := toTarget.Normalize()

	limit := distance
	if maxDistance < limit {
		limit = maxDistance
	}
	if limit < 0 {
		limit = 0
	}

	targetBox := Rect{Center: target, Width: targetHalf.X * 2, Height: targetHalf.Y * 2}
	box := Rect{Width: boxHalf.X * 2, Height: boxHalf.Y * 2}

	for traveled := 0.0; ; traveled += step {
		if step <= 0 || traveled > limit {
			traveled = limit
		}

		box.Center = viewer.Add(direction.Scale(traveled))
		for _, obstacle := range obstacles.Near(box) {
			if box.Overlaps(obstacle) {
				return false
			}
		}
		if box.Overlaps(targetBox) {
			return true
		}

		if traveled >= limit {
			return false
		}
	}
}
