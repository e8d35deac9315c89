// Incremental concave hulls for exploring agents.
//
// An agent reports the points it discovers to a Tracker and calls OnTick once
// per simulation tick. The tracker decides when the hull is stale, rebuilds it
// a bounded number of micro-steps per tick, and publishes each finished hull
// so that readers can ask whether a location is already covered.
package frontier

import (
	"github.com/osuushi/frontier/dbg"
	"github.com/osuushi/frontier/geom"
	"github.com/osuushi/frontier/hull"
	"github.com/osuushi/frontier/scheduler"
)

type Point = geom.Point
type Polygon = geom.Polygon
type Config = scheduler.Config
type Tracker = scheduler.Tracker
type Decision = scheduler.Decision

// DefaultConfig returns the tuning used when a Config field is left at zero.
func DefaultConfig() Config {
	return scheduler.DefaultConfig()
}

// New returns a tracker with an empty point set and no hull. Logging goes to
// log, which may be nil.
func New(cfg Config, log *dbg.Logger) *Tracker {
	return scheduler.NewTracker(cfg, log)
}

// Compute the concave hull of points in one call.
//
// The hull winds counterclockwise and contains every point. When no concave
// trace with up to maxK neighbours works out, the convex hull is returned
// instead. Fewer than three distinct points come back as they are.
func ConcaveHull(points []Point, k0, maxK int) (Polygon, error) {
	return hull.Build(points, k0, maxK)
}
