// pkg/physics/quadtree.go
package physics

import "sort"

const maxQuadTreeDepth = 8

// QuadTree indexes static rectangles for broad-phase queries. Each rectangle
// is stored in every leaf it touches and identified by its insertion index,
// so query results can be replayed in the original obstacle order.
type QuadTree struct {
	Boundary  Rect
	Capacity  int
	Divided   bool
	NorthWest *QuadTree
	NorthEast *QuadTree
	SouthWest *QuadTree
	SouthEast *QuadTree

	depth int
	items []int
	store *[]Rect // shared with every node of the tree
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree(boundary Rect, capacity int) *QuadTree {
	if capacity < 1 {
		capacity = 1
	}
	store := make([]Rect, 0)
	return &QuadTree{
		Boundary: boundary,
		Capacity: capacity,
		items:    make([]int, 0, capacity),
		store:    &store,
	}
}

// BuildQuadTree indexes rects in order; the returned tree covers all of them.
func BuildQuadTree(rects []Rect, capacity int) *QuadTree {
	qt := NewQuadTree(boundsOf(rects), capacity)
	for _, r := range rects {
		qt.Insert(r)
	}
	return qt
}

func boundsOf(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{Width: 1, Height: 1}
	}
	min, max := rects[0].Min(), rects[0].Max()
	for _, r := range rects[1:] {
		rMin, rMax := r.Min(), r.Max()
		if rMin.X < min.X {
			min.X = rMin.X
		}
		if rMin.Y < min.Y {
			min.Y = rMin.Y
		}
		if rMax.X > max.X {
			max.X = rMax.X
		}
		if rMax.Y > max.Y {
			max.Y = rMax.Y
		}
	}
	size := max.Sub(min)
	return NewRect(min.Add(size.Scale(0.5)), Vector2D{X: size.X + 2, Y: size.Y + 2})
}

// Insert adds a rectangle and returns its index. Rectangles outside the
// boundary are still recorded at the root so queries never miss them.
func (qt *QuadTree) Insert(r Rect) int {
	idx := len(*qt.store)
	*qt.store = append(*qt.store, r)
	if !qt.Boundary.intersects(r) {
		qt.items = append(qt.items, idx)
		return idx
	}
	qt.insert(idx)
	return idx
}

func (qt *QuadTree) insert(idx int) {
	r := qt.Rect(idx)
	if !qt.Boundary.intersects(r) {
		return
	}

	if !qt.Divided && (len(qt.items) < qt.Capacity || qt.depth >= maxQuadTreeDepth) {
		qt.items = append(qt.items, idx)
		return
	}

	if !qt.Divided {
		qt.Subdivide()
	}

	qt.NorthWest.insert(idx)
	qt.NorthEast.insert(idx)
	qt.SouthWest.insert(idx)
	qt.SouthEast.insert(idx)
}

// Subdivide splits the quadtree into four quadrants and pushes the items
// that fit inside the boundary down into them.
func (qt *QuadTree) Subdivide() {
	x := qt.Boundary.Center.X
	y := qt.Boundary.Center.Y
	w := qt.Boundary.Width / 2
	h := qt.Boundary.Height / 2

	nw := Rect{Center: Vector2D{X: x - w/2, Y: y + h/2}, Width: w, Height: h}
	ne := Rect{Center: Vector2D{X: x + w/2, Y: y + h/2}, Width: w, Height: h}
	sw := Rect{Center: Vector2D{X: x - w/2, Y: y - h/2}, Width: w, Height: h}
	se := Rect{Center: Vector2D{X: x + w/2, Y: y - h/2}, Width: w, Height: h}

	qt.NorthWest = qt.child(nw)
	qt.NorthEast = qt.child(ne)
	qt.SouthWest = qt.child(sw)
	qt.SouthEast = qt.child(se)
	qt.Divided = true

	kept := qt.items[:0]
	for _, idx := range qt.items {
		if !qt.Boundary.intersects(qt.Rect(idx)) {
			kept = append(kept, idx)
			continue
		}
		qt.NorthWest.insert(idx)
		qt.NorthEast.insert(idx)
		qt.SouthWest.insert(idx)
		qt.SouthEast.insert(idx)
	}
	qt.items = kept
}

func (qt *QuadTree) child(boundary Rect) *QuadTree {
	c := NewQuadTree(boundary, qt.Capacity)
	c.depth = qt.depth + 1
	c.store = qt.store
	return c
}

// Len returns the number of indexed rectangles.
func (qt *QuadTree) Len() int {
	return len(*qt.store)
}

// Rect returns the rectangle stored at index idx.
func (qt *QuadTree) Rect(idx int) Rect {
	return (*qt.store)[idx]
}

// Query returns the indices of all rectangles that could overlap area,
// sorted ascending and without duplicates.
func (qt *QuadTree) Query(area Rect) []int {
	seen := make(map[int]struct{})
	qt.collect(area, seen)

	found := make([]int, 0, len(seen))
	for idx := range seen {
		found = append(found, idx)
	}
	sort.Ints(found)
	return found
}

func (qt *QuadTree) collect(area Rect, seen map[int]struct{}) {
	// Items outside the boundary live only at the root and are always candidates.
	for _, idx := range qt.items {
		if qt.Rect(idx).intersects(area) {
			seen[idx] = struct{}{}
		}
	}

	if !qt.Divided || !qt.Boundary.intersects(area) {
		return
	}

	qt.NorthWest.collect(area, seen)
	qt.NorthEast.collect(area, seen)
	qt.SouthWest.collect(area, seen)
	qt.SouthEast.collect(area, seen)
}

// Near implements Obstacles using the index as a broad phase.
func (qt *QuadTree) Near(area Rect) []Rect {
	indices := qt.Query(area)
	near := make([]Rect, len(indices))
	for i, idx := range indices {
		near[i] = qt.Rect(idx)
	}
	return near
}
