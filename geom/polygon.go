package geom

import "math"

// Substituted for a zero denominator in the ray casting intersection.
const rayEpsilon = 1e-12

// Boundary inclusive point-in-polygon. A point lying exactly on an edge is
// inside. The polygon may wind either way.
func (poly Polygon) Contains(p Point) bool {
	n := len(poly)
	if n == 0 {
		return false
	}

	// Boundary check first, so that the ray cast never has to decide about
	// points on an edge.
	for i, a := range poly {
		b := poly[CircularIndex(i+1, n)]
		if Orientation(a, b, p) == Collinear && OnSegment(a, b, p) {
			return true
		}
	}
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a := poly[i]
		b := poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			denominator := b.Y - a.Y
			if denominator == 0 {
				denominator = rayEpsilon
			}
			x := (b.X-a.X)*(p.Y-a.Y)/denominator + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func PointInPolygon(poly Polygon, p Point) bool {
	return poly.Contains(p)
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, a := range poly {
		b := poly[CircularIndex(i+1, len(poly))]
		sum += a.Cross(b)
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Area centroid. Degenerate polygons with no area fall back to the mean of
// their vertices.
func (poly Polygon) Center() Point {
	if len(poly) == 0 {
		return Point{}
	}

	area := poly.SignedArea()
	if Equal(area, 0) {
		var sum Point
		for _, p := range poly {
			sum = sum.Add(p)
		}
		n := float64(len(poly))
		return Point{sum.X / n, sum.Y / n}
	}

	var cx, cy float64
	for i, a := range poly {
		b := poly[CircularIndex(i+1, len(poly))]
		f := a.Cross(b)
		cx += (a.X + b.X) * f
		cy += (a.Y + b.Y) * f
	}
	return Point{cx / (6 * area), cy / (6 * area)}
}

func PolygonArea(poly Polygon) float64 {
	return poly.Area()
}

func PolygonCenter(poly Polygon) Point {
	return poly.Center()
}

func (poly Polygon) Reverse() Polygon {
	reversed := make(Polygon, 0, len(poly))
	for i := len(poly) - 1; i >= 0; i-- {
		reversed = append(reversed, poly[i])
	}
	return reversed
}

// Axis aligned bounds as min and max corners. Empty polygons return zero points.
func (poly Polygon) Bounds() (lo, hi Point) {
	if len(poly) == 0 {
		return
	}
	lo, hi = poly[0], poly[0]
	for _, p := range poly[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return
}

func (poly Polygon) Clone() Polygon {
	if poly == nil {
		return nil
	}
	return append(Polygon(nil), poly...)
}
