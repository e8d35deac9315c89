package geom

type Point struct {
	X float64
	Y float64
}

// A polygon is an ordered list of vertices. The closing edge from the last
// vertex back to the first is implicit, so the first point is never repeated.
type Polygon []Point

type Turn int

const (
	Collinear Turn = iota
	CCW
	CW
)

func (t Turn) String() string {
	switch t {
	case CCW:
		return "CCW"
	case CW:
		return "CW"
	default:
		return "Collinear"
	}
}

type PointStack []Point
