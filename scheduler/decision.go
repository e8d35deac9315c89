package scheduler

// What EvaluateNeed concluded about the current point set.
type Decision int

const (
	// Fewer than three points. Any hull was cleared.
	DecisionNoHull Decision = iota
	// A job is still running. It is allowed to finish.
	DecisionInFlight
	// The point set has not changed since the last commit.
	DecisionUnchanged
	// The point set changed, but the last build is too recent.
	DecisionDebounced
	// Every new point is already inside the published hull. The fingerprint
	// was committed without a rebuild.
	DecisionCovered
	// A new job was started.
	DecisionRebuild
)

func (d Decision) String() string {
	switch d {
	case DecisionNoHull:
		return "no-hull"
	case DecisionInFlight:
		return "in-flight"
	case DecisionUnchanged:
		return "unchanged"
	case DecisionDebounced:
		return "debounced"
	case DecisionCovered:
		return "covered"
	case DecisionRebuild:
		return "rebuild"
	default:
		return "unknown"
	}
}
