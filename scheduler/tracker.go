package scheduler

import (
	"github.com/osuushi/frontier/dbg"
	"github.com/osuushi/frontier/geom"
	"github.com/osuushi/frontier/pointset"
)

// Tracker is the per-agent entry point. Survey code reports discovered points
// into it, the host calls OnTick once per tick, and frontier logic asks
// IsInsideHull whether a place has been covered yet.
type Tracker struct {
	points    *pointset.Collection
	scheduler *Scheduler

	lastEval  int64
	evaluated bool
}

func NewTracker(cfg Config, log *dbg.Logger) *Tracker {
	s := New(cfg, log)
	return &Tracker{
		points:    pointset.NewCollection(s.cfg.Quantum),
		scheduler: s,
	}
}

// ReportPoint records a discovered coordinate. Returns false when it collapses
// onto a known point.
func (t *Tracker) ReportPoint(x, y float64) bool {
	return t.points.Add(x, y)
}

// ReportPoints records every point and returns how many were new.
func (t *Tracker) ReportPoints(points []geom.Point) int {
	return t.points.AddPoints(points)
}

// OnTick steps any running job, after evaluating the point set if EvalInterval
// ticks have passed since the last evaluation.
func (t *Tracker) OnTick(tick int64) {
	if !t.evaluated || tick-t.lastEval >= t.scheduler.cfg.EvalInterval {
		t.OnCoarseInterval(tick)
	}
	t.scheduler.StepJob(tick)
}

// OnCoarseInterval evaluates the current point set immediately.
func (t *Tracker) OnCoarseInterval(tick int64) Decision {
	t.lastEval = tick
	t.evaluated = true
	return t.scheduler.evaluate(t.points.Points(), t.points.Fingerprint(), tick)
}

func (t *Tracker) IsInsideHull(p geom.Point) bool {
	return t.scheduler.IsInsideHull(p)
}

func (t *Tracker) PublishedHull() (geom.Polygon, bool) {
	return t.scheduler.PublishedHull()
}

// Points returns a snapshot of every known point.
func (t *Tracker) Points() []geom.Point {
	return t.points.Points()
}

func (t *Tracker) Fingerprint() pointset.Fingerprint {
	return t.points.Fingerprint()
}

func (t *Tracker) Scheduler() *Scheduler {
	return t.scheduler
}
