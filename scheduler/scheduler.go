// Package scheduler decides when the coverage hull of a growing point set is
// stale, and drives hull jobs forward a bounded amount per tick.
//
// A Scheduler is single threaded: EvaluateNeed, StepJob and friends must be
// called from one goroutine, typically the host's tick loop. The published
// hull is the exception. It is swapped atomically, so IsInsideHull,
// PublishedHull and Published may be called from anywhere, and always see a
// complete hull.
package scheduler

import (
	"sync/atomic"

	"github.com/osuushi/frontier/dbg"
	"github.com/osuushi/frontier/geom"
	"github.com/osuushi/frontier/hull"
	"github.com/osuushi/frontier/pointset"
)

type Stats struct {
	Evaluations     int
	RebuildsStarted int
	Published       int
	CoveredSkips    int
	Fallbacks       int
	Discarded       int
	MicroSteps      int
}

type Scheduler struct {
	cfg       Config
	quantizer pointset.Quantizer
	log       *dbg.Logger

	job   *hull.Job
	jobFP pointset.Fingerprint

	published atomic.Pointer[Hull]
	// Fingerprint the published hull is known to satisfy, and the keys of the
	// points it was checked against.
	committed  pointset.Fingerprint
	membership pointset.KeySet
	lastBuild  int64
	built      bool

	stats Stats
}

// New returns a scheduler with no hull. Zero config fields take their
// defaults. log may be nil.
func New(cfg Config, log *dbg.Logger) *Scheduler {
	cfg = cfg.withDefaults()
	return &Scheduler{
		cfg:        cfg,
		quantizer:  pointset.Quantizer{Step: cfg.Quantum},
		log:        log,
		membership: make(pointset.KeySet),
	}
}

func (s *Scheduler) Config() Config {
	return s.cfg
}

// EvaluateNeed compares points against the last committed state and decides
// whether the hull must be rebuilt. It never preempts a running job.
func (s *Scheduler) EvaluateNeed(points []geom.Point, tick int64) Decision {
	return s.evaluate(points, pointset.FingerprintOf(points, s.cfg.Quantum), tick)
}

func (s *Scheduler) evaluate(points []geom.Point, fp pointset.Fingerprint, tick int64) Decision {
	s.stats.Evaluations++

	if fp.Count < 3 {
		if s.job != nil || s.published.Load() != nil {
			s.log.Tracef("tick %d: %d points, clearing hull", tick, fp.Count)
		}
		s.Discard()
		s.published.Store(nil)
		s.membership = make(pointset.KeySet)
		s.committed = fp
		s.built = false
		return DecisionNoHull
	}

	if s.job != nil {
		return DecisionInFlight
	}

	if fp == s.committed {
		return DecisionUnchanged
	}

	if s.built && tick-s.lastBuild < s.cfg.StaleTicks {
		s.log.Tracef("tick %d: fingerprint %s is new, last build at tick %d is too recent", tick, fp, s.lastBuild)
		return DecisionDebounced
	}

	if keys, ok := s.covered(points); ok {
		s.committed = fp
		s.membership = keys
		s.stats.CoveredSkips++
		s.log.Tracef("tick %d: fingerprint %s already covered by the published hull", tick, fp)
		return DecisionCovered
	}

	s.job = hull.Start(s.quantizer.Points(points), s.cfg.K0, s.cfg.MaxK)
	s.jobFP = fp
	s.stats.RebuildsStarted++
	s.log.Infof("tick %d: job %s started over %d points (fingerprint %s)", tick, s.log.Name(s.job), s.job.Len(), fp)
	return DecisionRebuild
}

// Does the published hull contain every point that is not already in the
// membership set? On success, returns the membership set for points.
func (s *Scheduler) covered(points []geom.Point) (pointset.KeySet, bool) {
	current := s.published.Load()
	if current == nil || len(current.Points) < 3 {
		return nil, false
	}

	keys := s.keysOf(points)
	for _, k := range keys.Diff(s.membership) {
		if !current.Points.Contains(s.quantizer.PointOf(k)) {
			return nil, false
		}
	}
	return keys, true
}

// StepJob advances the running job by one tick's budget. When the job
// finishes, its hull is published and its fingerprint committed. Returns true
// if a hull was published by this call. A finished job whose hull has fewer
// than three vertices commits its fingerprint but leaves no hull published.
func (s *Scheduler) StepJob(tick int64) bool {
	if s.job == nil {
		return false
	}

	job := s.job
	before := job.Steps()
	done, result := job.Step(s.cfg.StepBudget)
	s.stats.MicroSteps += job.Steps() - before
	if !done {
		return false
	}

	// Collinear point sets only have a segment for a hull. Nothing is covered
	// by it, so it is not published, but the point set still counts as handled.
	if len(result) >= 3 {
		s.published.Store(&Hull{
			Points:      result,
			Fingerprint: s.jobFP,
			Tick:        tick,
			Fallback:    job.Fallback(),
		})
		s.stats.Published++
	} else {
		s.published.Store(nil)
	}
	s.committed = s.jobFP
	s.lastBuild = tick
	s.built = true
	s.membership = s.keysOf(job.Points())

	switch {
	case len(result) < 3:
		s.log.Infof("tick %d: job %s found only a degenerate hull of %d vertices, nothing published", tick, s.log.Name(job), len(result))
	case job.Fallback():
		s.stats.Fallbacks++
		s.log.Warnf("tick %d: job %s fell back to the convex hull (%d vertices) after %d attempts", tick, s.log.Name(job), len(result), job.Attempts())
	default:
		s.log.Infof("tick %d: job %s published %d vertices, k=%d, %d steps", tick, s.log.Name(job), len(result), job.K(), job.Steps())
	}

	dbg.Forget(job)
	s.job = nil
	return len(result) >= 3
}

// Discard drops the running job, if any, without committing anything.
func (s *Scheduler) Discard() {
	if s.job == nil {
		return
	}
	s.log.Tracef("job %s discarded in phase %s", s.log.Name(s.job), s.job.Phase())
	dbg.Forget(s.job)
	s.job = nil
	s.stats.Discarded++
}

// LoadHull publishes a previously saved hull, as if a job had just produced
// it. Its vertices become the membership set, so the next evaluation checks
// every other known point against it.
func (s *Scheduler) LoadHull(points geom.Polygon, tick int64) {
	s.Discard()
	if len(points) < 3 {
		s.published.Store(nil)
		s.membership = make(pointset.KeySet)
		s.committed = pointset.Fingerprint{}
		return
	}

	quantized := geom.Polygon(s.quantizer.Points(points))
	fp := pointset.FingerprintOf(quantized, s.cfg.Quantum)
	s.published.Store(&Hull{
		Points:      quantized,
		Fingerprint: fp,
		Tick:        tick,
	})
	s.committed = fp
	s.membership = s.keysOf(quantized)
	s.lastBuild = tick
	s.built = true
}

func (s *Scheduler) keysOf(points []geom.Point) pointset.KeySet {
	keys := make(pointset.KeySet, len(points))
	for _, p := range points {
		keys.Add(s.quantizer.Key(s.quantizer.Point(p)))
	}
	return keys
}

// IsInsideHull reports whether p is inside or on the published hull. With no
// hull, nothing is covered.
func (s *Scheduler) IsInsideHull(p geom.Point) bool {
	return s.published.Load().Contains(p)
}

// PublishedHull returns a copy of the published polygon, or false when there
// is none.
func (s *Scheduler) PublishedHull() (geom.Polygon, bool) {
	h := s.published.Load()
	if h == nil {
		return nil, false
	}
	return h.Points.Clone(), true
}

// Published returns the published hull itself, or nil. It must not be
// modified.
func (s *Scheduler) Published() *Hull {
	return s.published.Load()
}

func (s *Scheduler) Busy() bool {
	return s.job != nil
}

func (s *Scheduler) Committed() pointset.Fingerprint {
	return s.committed
}

func (s *Scheduler) Stats() Stats {
	return s.stats
}
