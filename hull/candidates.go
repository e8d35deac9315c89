package hull

import (
	"math"
	"sort"

	"github.com/osuushi/frontier/geom"
)

type candidate struct {
	index  int
	distSq float64
	angle  float64
}

// Worse candidates sort first, so the heap top is the one to evict.
func fartherFirst(a, b candidate) bool {
	if a.distSq != b.distSq {
		return a.distSq > b.distSq
	}
	return a.index > b.index
}

// The start point rejoins the pool once the trace could close into a polygon.
func (j *Job) eligible(i int) bool {
	if i == j.current {
		return false
	}
	if i == j.start {
		return len(j.hull) >= 3
	}
	return !j.used[i]
}

// Collect the k nearest eligible points to the current vertex, ordered by how
// sharply the trace would have to turn to reach them.
func (j *Job) gatherCandidates() {
	cur := j.pts[j.current]
	nearest := &j.nearest
	for i, p := range j.pts {
		if !j.eligible(i) {
			continue
		}
		c := candidate{index: i, distSq: cur.DistSq(p)}
		if nearest.Len() < j.k {
			nearest.Push(c)
		} else if fartherFirst(nearest.Peek(), c) {
			nearest.ReplaceTop(c)
		}
	}

	j.candidates = j.candidates[:0]
	for !nearest.IsEmpty() {
		c := nearest.Pop()
		c.angle = turnAngle(j.prevDir, j.pts[c.index].Sub(cur))
		j.candidates = append(j.candidates, c)
	}
	sort.Slice(j.candidates, func(a, b int) bool {
		ca, cb := j.candidates[a], j.candidates[b]
		if ca.angle != cb.angle {
			return ca.angle < cb.angle
		}
		if ca.distSq != cb.distSq {
			return ca.distSq < cb.distSq
		}
		return ca.index < cb.index
	})
}

// Counterclockwise angle from ref to d, in (0, 2π]. Heading straight back
// along ref is the largest possible turn rather than no turn at all.
func turnAngle(ref, d geom.Point) float64 {
	angle := math.Atan2(ref.Cross(d), ref.Dot(d))
	if angle <= 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// Would the edge from the current vertex to candidate i keep the trace
// simple? Edges sharing an endpoint with the new edge are skipped, since
// touching counts as intersecting.
func (j *Job) acceptable(i int) bool {
	cur := j.pts[j.current]
	next := j.pts[i]
	last := len(j.hull) - 1

	first := 0
	if i == j.start {
		if len(j.hull) < 3 {
			return false
		}
		// The first edge leaves the start point
		first = 1
	}

	// The edge ending at the current vertex is adjacent, so stop before it
	for e := first; e < last-1; e++ {
		a := j.pts[j.hull[e]]
		b := j.pts[j.hull[e+1]]
		if geom.SegmentsIntersect(cur, next, a, b) {
			return false
		}
	}
	return true
}
