package main

import (
	"os"

	"github.com/osuushi/frontier/geom"
	"github.com/osuushi/frontier/pointset"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A saved hull is its ordered vertex list, plus enough bookkeeping to tell
// where it came from.
type savedHull struct {
	Fingerprint pointset.Fingerprint
	Tick        int64
	Fallback    bool
	Points      geom.Polygon
}

type hullFile struct {
	Count    uint64       `yaml:"count"`
	Hash     uint64       `yaml:"hash"`
	Tick     int64        `yaml:"tick"`
	Fallback bool         `yaml:"fallback,omitempty"`
	Points   [][2]float64 `yaml:"points,flow"`
}

func saveHull(path string, h savedHull) error {
	file := hullFile{
		Count:    h.Fingerprint.Count,
		Hash:     h.Fingerprint.Hash,
		Tick:     h.Tick,
		Fallback: h.Fallback,
		Points:   make([][2]float64, len(h.Points)),
	}
	for i, p := range h.Points {
		file.Points[i] = [2]float64{p.X, p.Y}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return errors.Wrap(err, "encoding hull")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing hull %s", path)
	}
	return nil
}

func loadHull(path string) (savedHull, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return savedHull{}, errors.Wrapf(err, "reading hull %s", path)
	}
	var file hullFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return savedHull{}, errors.Wrapf(err, "parsing hull %s", path)
	}

	h := savedHull{
		Fingerprint: pointset.Fingerprint{Count: file.Count, Hash: file.Hash},
		Tick:        file.Tick,
		Fallback:    file.Fallback,
		Points:      make(geom.Polygon, len(file.Points)),
	}
	for i, p := range file.Points {
		h.Points[i] = geom.Point{X: p[0], Y: p[1]}
	}
	return h, nil
}
