// Package pointset snaps observed coordinates onto a grid, removes duplicates,
// and summarizes point sets with cheap order-independent fingerprints.
package pointset

import (
	"math"

	"github.com/osuushi/frontier/geom"
)

// Snap v to the nearest multiple of step. A non-positive step leaves v alone.
func Quantize(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// Integer grid coordinates of a quantized point. Keys are what membership sets
// and fingerprints are built from, so that float formatting never matters.
type Key struct {
	X, Y int64
}

type Quantizer struct {
	Step float64
}

func (q Quantizer) Point(p geom.Point) geom.Point {
	return geom.Point{X: Quantize(p.X, q.Step), Y: Quantize(p.Y, q.Step)}
}

func (q Quantizer) Key(p geom.Point) Key {
	if q.Step <= 0 {
		return Key{int64(math.Round(p.X)), int64(math.Round(p.Y))}
	}
	return Key{int64(math.Round(p.X / q.Step)), int64(math.Round(p.Y / q.Step))}
}

// PointOf maps a key back to its quantized point. For a positive step,
// q.PointOf(q.Key(q.Point(p))) == q.Point(p).
func (q Quantizer) PointOf(k Key) geom.Point {
	if q.Step <= 0 {
		return geom.Point{X: float64(k.X), Y: float64(k.Y)}
	}
	return geom.Point{X: float64(k.X) * q.Step, Y: float64(k.Y) * q.Step}
}

// Quantize every point, without deduplication.
func (q Quantizer) Points(points []geom.Point) []geom.Point {
	result := make([]geom.Point, len(points))
	for i, p := range points {
		result[i] = q.Point(p)
	}
	return result
}

// Stable de-duplication by exact coordinate equality. The first occurrence of
// each point wins, so the output order is first-seen order.
func Dedupe(points []geom.Point) []geom.Point {
	seen := make(map[geom.Point]struct{}, len(points))
	result := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}
