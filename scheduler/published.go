package scheduler

import (
	"github.com/osuushi/frontier/geom"
	"github.com/osuushi/frontier/pointset"
)

// Hull is a published hull. It is never modified after publication; a newer
// hull replaces it wholesale.
type Hull struct {
	Points      geom.Polygon
	Fingerprint pointset.Fingerprint
	// Tick the hull was published at.
	Tick int64
	// Whether the job settled for the convex hull.
	Fallback bool
}

// Inside-or-on test. Hulls with fewer than three vertices cover nothing.
func (h *Hull) Contains(p geom.Point) bool {
	if h == nil || len(h.Points) < 3 {
		return false
	}
	return h.Points.Contains(p)
}
