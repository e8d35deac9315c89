package geom

// Cross product of the vectors a->b and a->c. Positive when c lies to the left
// of the directed line a->b.
func Cross(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func Orientation(a, b, c Point) Turn {
	cross := Cross(a, b, c)
	switch {
	case Equal(cross, 0):
		return Collinear
	case cross > 0:
		return CCW
	default:
		return CW
	}
}

// Assuming a, b and p are collinear, is p within the bounding box of segment ab?
func OnSegment(a, b, p Point) bool {
	return p.X <= max(a.X, b.X)+Tolerance && p.X >= min(a.X, b.X)-Tolerance &&
		p.Y <= max(a.Y, b.Y)+Tolerance && p.Y >= min(a.Y, b.Y)-Tolerance
}

// Do segments ab and cd share any point? Touching endpoints and collinear
// overlap both count as intersecting, which keeps the hull tracer conservative.
func SegmentsIntersect(a, b, c, d Point) bool {
	o1 := Orientation(a, b, c)
	o2 := Orientation(a, b, d)
	o3 := Orientation(c, d, a)
	o4 := Orientation(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear special cases
	if o1 == Collinear && OnSegment(a, b, c) {
		return true
	}
	if o2 == Collinear && OnSegment(a, b, d) {
		return true
	}
	if o3 == Collinear && OnSegment(c, d, a) {
		return true
	}
	if o4 == Collinear && OnSegment(c, d, b) {
		return true
	}
	return false
}
