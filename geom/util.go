package geom

import "math"

const Tolerance = 1e-9

// Points are quantized before they reach the kernel, so cross products are
// usually exact. The tolerance only absorbs rounding in derived values.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Z component of the 3D cross product of two vectors
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Exact equality. Quantized points compare exactly, which is what the hull
// builder relies on.
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Lowest y wins, ties go to the lowest x.
func (p Point) Below(q Point) bool {
	if p.Y == q.Y {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() Point {
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() Point {
	return (*s)[len(*s)-1]
}

// Second element from the top. Only valid when the stack holds two or more points.
func (s *PointStack) PeekBelow() Point {
	return (*s)[len(*s)-2]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}
