package sim

import (
	"math"
	"math/rand/v2"

	"github.com/osuushi/frontier/dbg"
	"github.com/osuushi/frontier/geom"
	"github.com/osuushi/frontier/scheduler"
)

type AgentConfig struct {
	Speed           float64
	SurveyRadius    float64
	SurveyInterval  int64
	FrontierRing    float64
	FrontierSamples int
}

func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		Speed:           1.5,
		SurveyRadius:    24,
		SurveyInterval:  10,
		FrontierRing:    40,
		FrontierSamples: 16,
	}
}

// Agent walks towards a target, surveys its surroundings on a fixed cadence,
// and picks its next target outside the covered region when it can.
type Agent struct {
	cfg     AgentConfig
	world   *World
	tracker *scheduler.Tracker
	rng     *rand.Rand
	log     *dbg.Logger

	pos    geom.Point
	target geom.Point
	trail  []geom.Point

	reported int
	targets  int
	frontier int
}

func NewAgent(cfg AgentConfig, world *World, tracker *scheduler.Tracker, seed uint64, log *dbg.Logger) *Agent {
	half := world.Size() / 2
	a := &Agent{
		cfg:     cfg,
		world:   world,
		tracker: tracker,
		rng:     rand.New(rand.NewPCG(seed, seed+1)),
		log:     log,
		pos:     geom.Point{X: half, Y: half},
	}
	a.target = a.pos
	return a
}

func (a *Agent) Position() geom.Point {
	return a.pos
}

// Positions visited at each survey, oldest first.
func (a *Agent) Trail() []geom.Point {
	return append([]geom.Point(nil), a.trail...)
}

// Tick moves the agent, surveys when due, and drives the tracker.
func (a *Agent) Tick(tick int64) {
	if tick%a.cfg.SurveyInterval == 0 {
		a.survey()
	}
	a.move()
	a.tracker.OnTick(tick)
}

func (a *Agent) survey() {
	a.trail = append(a.trail, a.pos)
	features := a.world.FeaturesNear(a.pos, a.cfg.SurveyRadius)
	a.reported += a.tracker.ReportPoints(features)
}

func (a *Agent) move() {
	d := a.target.Sub(a.pos)
	dist := math.Sqrt(d.Dot(d))
	if dist <= a.cfg.Speed {
		a.pos = a.target
		a.pickTarget()
		return
	}
	scale := a.cfg.Speed / dist
	a.pos = a.pos.Add(geom.Point{X: d.X * scale, Y: d.Y * scale})
}

// Prefer a point on the frontier ring that the hull does not cover yet. When
// everything nearby is covered, wander to a random place instead.
func (a *Agent) pickTarget() {
	a.targets++
	offset := a.rng.Float64() * 2 * math.Pi
	for i := 0; i < a.cfg.FrontierSamples; i++ {
		angle := offset + 2*math.Pi*float64(i)/float64(a.cfg.FrontierSamples)
		candidate := geom.Point{
			X: a.pos.X + a.cfg.FrontierRing*math.Cos(angle),
			Y: a.pos.Y + a.cfg.FrontierRing*math.Sin(angle),
		}
		if !a.world.Contains(candidate) || a.tracker.IsInsideHull(candidate) {
			continue
		}
		a.frontier++
		a.target = candidate
		return
	}

	size := a.world.Size()
	a.target = geom.Point{X: a.rng.Float64() * size, Y: a.rng.Float64() * size}
	a.log.Tracef("no uncovered frontier near (%.1f, %.1f), wandering to (%.1f, %.1f)", a.pos.X, a.pos.Y, a.target.X, a.target.Y)
}

type Summary struct {
	Ticks          int64
	Reported       int
	Targets        int
	FrontierTarget int
	Hull           geom.Polygon
	Scheduler      scheduler.Stats
}

// Run ticks the agent from tick 0 up to, but not including, ticks.
func Run(a *Agent, ticks int64) Summary {
	for tick := int64(0); tick < ticks; tick++ {
		a.Tick(tick)
	}
	hull, _ := a.tracker.PublishedHull()
	return Summary{
		Ticks:          ticks,
		Reported:       a.reported,
		Targets:        a.targets,
		FrontierTarget: a.frontier,
		Hull:           hull,
		Scheduler:      a.tracker.Scheduler().Stats(),
	}
}
