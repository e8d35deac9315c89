// Package sim is a small exploration harness: a noise generated world full of
// static features, and a survey agent that roams it, reporting the features it
// sees and steering towards places its hull does not cover yet.
package sim

import (
	"math"
	"math/rand/v2"

	"github.com/furui/fastnoiselite-go"
	"github.com/osuushi/frontier/geom"
)

type WorldConfig struct {
	Seed      int64
	Size      float64
	Frequency float64
	Threshold float64
	Cell      float64
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Seed:      1,
		Size:      400,
		Frequency: 0.02,
		Threshold: 0.35,
		Cell:      4,
	}
}

// World is deterministic for a given config: the same cell always holds the
// same feature, or none.
type World struct {
	cfg    WorldConfig
	noise  *fastnoiselite.FastNoiseLite
	jitter *fastnoiselite.FastNoiseLite
}

func NewWorld(cfg WorldConfig) *World {
	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), 0x9e3779b97f4a7c15))

	noise := fastnoiselite.NewNoise()
	noise.Seed = rng.Int32()
	noise.Frequency = cfg.Frequency

	jitter := fastnoiselite.NewNoise()
	jitter.Seed = rng.Int32()
	jitter.Frequency = 1 / cfg.Cell

	return &World{
		cfg:    cfg,
		noise:  noise,
		jitter: jitter,
	}
}

func (w *World) Size() float64 {
	return w.cfg.Size
}

func (w *World) Contains(p geom.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= w.cfg.Size && p.Y <= w.cfg.Size
}

func sample(noise *fastnoiselite.FastNoiseLite, x, y float64) float64 {
	return float64(noise.GetNoise2D(fastnoiselite.FNLfloat(x), fastnoiselite.FNLfloat(y)))
}

// Feature in the cell at column i, row j, if there is one. Features sit near
// the cell centre, displaced by up to a third of a cell.
func (w *World) feature(i, j int) (geom.Point, bool) {
	cell := w.cfg.Cell
	cx := (float64(i) + 0.5) * cell
	cy := (float64(j) + 0.5) * cell
	if sample(w.noise, cx, cy) <= w.cfg.Threshold {
		return geom.Point{}, false
	}
	dx := sample(w.jitter, cx, cy) * cell / 3
	dy := sample(w.jitter, cy, cx) * cell / 3
	return geom.Point{X: cx + dx, Y: cy + dy}, true
}

// FeaturesNear returns every feature within radius of center.
func (w *World) FeaturesNear(center geom.Point, radius float64) []geom.Point {
	cell := w.cfg.Cell
	cells := int(math.Ceil(w.cfg.Size / cell))
	lo := func(v float64) int { return max(0, int(math.Floor((v-radius)/cell))) }
	hi := func(v float64) int { return min(cells-1, int(math.Floor((v+radius)/cell))) }

	var found []geom.Point
	radiusSq := radius * radius
	for i := lo(center.X); i <= hi(center.X); i++ {
		for j := lo(center.Y); j <= hi(center.Y); j++ {
			p, ok := w.feature(i, j)
			if !ok || !w.Contains(p) || p.DistSq(center) > radiusSq {
				continue
			}
			found = append(found, p)
		}
	}
	return found
}

// Features returns every feature in the world.
func (w *World) Features() []geom.Point {
	half := w.cfg.Size / 2
	return w.FeaturesNear(geom.Point{X: half, Y: half}, half*math.Sqrt2)
}
