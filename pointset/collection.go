package pointset

import "github.com/osuushi/frontier/geom"

// Collection is the live set of discovered points. It grows as a survey
// reports features, quantizing and de-duplicating on the way in, and keeps a
// running fingerprint so change detection never has to rescan it.
//
// Hull jobs never see a Collection directly. They work on the copy returned by
// Points, so later reports cannot disturb a job in flight.
type Collection struct {
	quantizer   Quantizer
	points      []geom.Point
	keys        KeySet
	fingerprint Fingerprint
}

func NewCollection(step float64) *Collection {
	return &Collection{
		quantizer: Quantizer{Step: step},
		keys:      make(KeySet),
	}
}

// Add quantizes the coordinate and records it. Returns false when the point
// collapses onto one already known.
func (c *Collection) Add(x, y float64) bool {
	p := c.quantizer.Point(geom.Point{X: x, Y: y})
	k := c.quantizer.Key(p)
	if c.keys.Has(k) {
		return false
	}
	c.keys.Add(k)
	c.points = append(c.points, p)
	c.fingerprint = c.fingerprint.With(k)
	return true
}

// AddPoints records every point and returns how many were new.
func (c *Collection) AddPoints(points []geom.Point) int {
	added := 0
	for _, p := range points {
		if c.Add(p.X, p.Y) {
			added++
		}
	}
	return added
}

func (c *Collection) Points() []geom.Point {
	return append([]geom.Point(nil), c.points...)
}

func (c *Collection) Len() int {
	return len(c.points)
}

func (c *Collection) Fingerprint() Fingerprint {
	return c.fingerprint
}
