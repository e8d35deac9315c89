// Package hull builds concave hulls incrementally. A Job traces a closed,
// non-self-intersecting polygon through a frozen point set using k nearest
// neighbours, a few micro-steps at a time, so that callers can spread the work
// over many scheduler ticks.
//
// Each failed trace retries with a larger k. Once k passes its ceiling the job
// gives up on concavity and settles for the convex hull, so every job ends.
package hull

import (
	"fmt"

	"github.com/osuushi/frontier/dbg"
	"github.com/osuushi/frontier/geom"
	"github.com/osuushi/frontier/internal/heap"
	"github.com/osuushi/frontier/pointset"
)

// Candidate gatherings allowed in one attempt before it is abandoned.
const GuardLimit = 10000

type Phase int

const (
	PhaseInitAttempt Phase = iota
	PhaseBuild
	PhaseValidate
	PhaseDone
	PhaseFallbackDone
)

func (p Phase) String() string {
	switch p {
	case PhaseInitAttempt:
		return "InitAttempt"
	case PhaseBuild:
		return "Build"
	case PhaseValidate:
		return "Validate"
	case PhaseDone:
		return "Done"
	case PhaseFallbackDone:
		return "FallbackDone"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFallbackDone
}

type Job struct {
	// Frozen for the lifetime of the job. Every point keeps its index.
	pts        []geom.Point
	n          int
	k          int
	maxK       int
	guardLimit int

	// Per attempt state
	used    []bool
	hull    []int
	start   int
	current int
	// Direction from the current vertex back to the previous one. Candidates
	// are ranked by the counterclockwise angle they make with it.
	prevDir geom.Point
	guard   int

	// Candidate scan for the current vertex, resumable between steps
	nearest    heap.Heap[candidate]
	candidates []candidate
	candPos    int
	scanning   bool

	// Validation of a closed trace
	polygon geom.Polygon
	cursor  int

	phase    Phase
	result   geom.Polygon
	steps    int
	attempts int
}

// Start freezes a de-duplicated copy of points. Fewer than three distinct
// points finish immediately, with the points themselves as the result.
//
// The first attempt uses k0 neighbours, clamped to [3, n]. Attempts escalate
// until k exceeds maxK, after which the job falls back to the convex hull.
// Since k = n already makes every point a candidate, the ceiling is also
// capped at n.
func Start(points []geom.Point, k0, maxK int) *Job {
	pts := pointset.Dedupe(points)
	j := &Job{
		pts: pts,
		n:   len(pts),
	}
	if j.n < 3 {
		j.result = geom.Polygon(pts).Clone()
		j.phase = PhaseDone
		return j
	}

	j.k = min(max(k0, 3), j.n)
	j.maxK = min(maxK, j.n)
	j.used = make([]bool, j.n)
	j.hull = make([]int, 0, j.n)
	j.nearest = heap.Make(fartherFirst)
	j.guardLimit = GuardLimit
	j.phase = PhaseInitAttempt
	return j
}

// Step performs at most budget micro-steps. A micro-step is one phase
// transition, one candidate gathering, one candidate check, or one point
// containment check. The hull is returned once the job has finished, and on
// every later call.
func (j *Job) Step(budget int) (done bool, hull geom.Polygon) {
	for spent := 0; spent < budget && !j.phase.Terminal(); spent++ {
		j.steps++
		switch j.phase {
		case PhaseInitAttempt:
			j.initAttempt()
		case PhaseBuild:
			j.build()
		case PhaseValidate:
			j.validate()
		default:
			fatalf("job %s stepped in phase %s", j.Name(), j.phase)
		}
	}

	if j.phase.Terminal() {
		return true, j.result.Clone()
	}
	return false, nil
}

func (j *Job) initAttempt() {
	if j.k > j.maxK {
		j.result = geom.ConvexHull(j.pts)
		j.phase = PhaseFallbackDone
		return
	}

	j.attempts++
	clear(j.used)
	j.start = 0
	for i, p := range j.pts {
		if p.Below(j.pts[j.start]) {
			j.start = i
		}
	}
	j.used[j.start] = true
	j.hull = append(j.hull[:0], j.start)
	// West is an arbitrary reference. From the lowest point every other point
	// is above or level to the right, so the first edge heads east and the
	// trace winds counterclockwise.
	j.prevDir = geom.Point{X: -1, Y: 0}
	j.current = j.start
	j.guard = 0
	j.scanning = false
	j.polygon = nil
	j.phase = PhaseBuild
}

// Give up on this attempt and try again with one more neighbour.
func (j *Job) escalate() {
	j.k++
	j.scanning = false
	j.polygon = nil
	j.phase = PhaseInitAttempt
}

func (j *Job) build() {
	if !j.scanning {
		j.guard++
		if j.guard > j.guardLimit {
			j.escalate()
			return
		}
		j.gatherCandidates()
		if len(j.candidates) == 0 {
			j.escalate()
			return
		}
		j.scanning = true
		j.candPos = 0
		return
	}

	c := j.candidates[j.candPos]
	j.candPos++
	if !j.acceptable(c.index) {
		if j.candPos == len(j.candidates) {
			j.escalate()
		}
		return
	}

	j.scanning = false
	if c.index == j.start {
		j.beginValidate()
		return
	}

	if j.used[c.index] {
		fatalf("job %s accepted vertex %d twice", j.Name(), c.index)
	}
	next := j.pts[c.index]
	j.used[c.index] = true
	j.prevDir = j.pts[j.current].Sub(next)
	j.current = c.index
	j.hull = append(j.hull, c.index)
	// Every point visited without closing. The implicit closing edge gets the
	// same simplicity check an explicit one would.
	if len(j.hull) == j.n {
		if j.acceptable(j.start) {
			j.beginValidate()
		} else {
			j.escalate()
		}
	}
}

// A closed trace with no area is a path folded back on itself, not a polygon,
// so it is rejected before any point is checked.
func (j *Job) beginValidate() {
	j.polygon = make(geom.Polygon, len(j.hull))
	for i, index := range j.hull {
		j.polygon[i] = j.pts[index]
	}
	if len(j.polygon) < 3 || geom.Equal(j.polygon.Area(), 0) {
		j.escalate()
		return
	}
	j.cursor = 0
	j.phase = PhaseValidate
}

func (j *Job) validate() {
	if j.cursor >= j.n {
		fatalf("job %s validating point %d of %d", j.Name(), j.cursor, j.n)
	}
	if !j.polygon.Contains(j.pts[j.cursor]) {
		j.escalate()
		return
	}

	j.cursor++
	if j.cursor < j.n {
		return
	}

	result := j.polygon
	if result.SignedArea() < 0 {
		result = result.Reverse()
	}
	j.result = result
	j.polygon = nil
	j.phase = PhaseDone
}

func (j *Job) Phase() Phase {
	return j.phase
}

func (j *Job) Done() bool {
	return j.phase.Terminal()
}

// True when the job gave up on a concave trace and produced the convex hull.
func (j *Job) Fallback() bool {
	return j.phase == PhaseFallbackDone
}

// Neighbour count of the current (or last) attempt.
func (j *Job) K() int {
	return j.k
}

// Total micro-steps performed so far.
func (j *Job) Steps() int {
	return j.steps
}

// Number of concave trace attempts started so far.
func (j *Job) Attempts() int {
	return j.attempts
}

// Nil until the job is done.
func (j *Job) Result() geom.Polygon {
	if !j.Done() {
		return nil
	}
	return j.result.Clone()
}

// The frozen point set, copied.
func (j *Job) Points() []geom.Point {
	return append([]geom.Point(nil), j.pts...)
}

func (j *Job) Len() int {
	return j.n
}

func (j *Job) Name() string {
	return dbg.Name(j)
}

func (j *Job) String() string {
	return fmt.Sprintf("Job %s <n: %d, k: %d/%d, phase: %s, steps: %d>", j.Name(), j.n, j.k, j.maxK, j.phase, j.steps)
}
