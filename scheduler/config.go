package scheduler

// Config holds the tunables of a Scheduler. The evaluation cadence and the
// staleness threshold are policy, not correctness: any positive values work.
type Config struct {
	// Grid step that observed coordinates are snapped to.
	Quantum float64
	// Neighbour count of a job's first attempt, and its escalation ceiling.
	K0   int
	MaxK int
	// Micro-steps a job may take per tick.
	StepBudget int
	// Minimum ticks between two hull builds.
	StaleTicks int64
	// Ticks between two evaluations of the point set, when driven by OnTick.
	EvalInterval int64
}

func DefaultConfig() Config {
	return Config{
		Quantum:      1,
		K0:           3,
		MaxK:         30,
		StepBudget:   25,
		StaleTicks:   120,
		EvalInterval: 60,
	}
}

// Fill zero fields from the defaults. A zero StaleTicks is kept, and means no
// debouncing at all.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Quantum <= 0 {
		c.Quantum = d.Quantum
	}
	if c.K0 <= 0 {
		c.K0 = d.K0
	}
	if c.MaxK <= 0 {
		c.MaxK = d.MaxK
	}
	if c.StepBudget <= 0 {
		c.StepBudget = d.StepBudget
	}
	if c.StaleTicks < 0 {
		c.StaleTicks = 0
	}
	if c.EvalInterval <= 0 {
		c.EvalInterval = d.EvalInterval
	}
	return c
}
