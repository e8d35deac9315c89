package geom

import "sort"

// Graham scan. The result winds counterclockwise, starting from the lowest
// point (lowest y, then lowest x), and contains no collinear vertices. Inputs
// with fewer than three points come back unchanged, since they cannot form a
// polygon anyway.
func ConvexHull(points []Point) Polygon {
	if len(points) < 3 {
		return Polygon(points).Clone()
	}

	pivot := points[0]
	for _, p := range points[1:] {
		if p.Below(pivot) {
			pivot = p
		}
	}

	rest := make([]Point, 0, len(points)-1)
	for _, p := range points {
		// Duplicates of the pivot have no angle, and add nothing to the hull
		if p.Equals(pivot) {
			continue
		}
		rest = append(rest, p)
	}

	// Every other point is above the pivot, or level with it and to the right,
	// so the polar angles lie in [0, π) and the cross product orders them.
	sort.SliceStable(rest, func(i, j int) bool {
		switch Orientation(pivot, rest[i], rest[j]) {
		case CCW:
			return true
		case CW:
			return false
		default:
			return pivot.DistSq(rest[i]) < pivot.DistSq(rest[j])
		}
	})

	// Strip collinear runs down to their farthest point. Sorting put the
	// farthest last in each run.
	stripped := make([]Point, 0, len(rest))
	for i, p := range rest {
		if i+1 < len(rest) && Orientation(pivot, p, rest[i+1]) == Collinear {
			continue
		}
		stripped = append(stripped, p)
	}

	if len(stripped) < 2 {
		return append(Polygon{pivot}, stripped...)
	}

	stack := make(PointStack, 0, len(stripped)+1)
	stack.Push(pivot)
	stack.Push(stripped[0])
	for _, p := range stripped[1:] {
		for len(stack) >= 2 && Orientation(stack.PeekBelow(), stack.Peek(), p) != CCW {
			stack.Pop()
		}
		stack.Push(p)
	}
	return Polygon(stack)
}
