// Package config loads frontier settings from YAML files.
package config

import (
	"io"
	"os"

	"github.com/osuushi/frontier/dbg"
	"github.com/osuushi/frontier/scheduler"
	"github.com/osuushi/frontier/sim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Quantum      float64 `yaml:"quantum" json:"quantum" jsonschema:"description=Grid step observed coordinates snap to"`
	K0           int     `yaml:"k0" json:"k0" jsonschema:"minimum=3,description=Neighbour count of the first hull attempt"`
	MaxK         int     `yaml:"max_k" json:"max_k" jsonschema:"minimum=3,description=Neighbour count ceiling before the convex fallback"`
	StepBudget   int     `yaml:"step_budget" json:"step_budget" jsonschema:"minimum=1,description=Hull job micro-steps per tick"`
	StaleTicks   int64   `yaml:"stale_ticks" json:"stale_ticks" jsonschema:"minimum=0,description=Minimum ticks between hull builds"`
	EvalInterval int64   `yaml:"eval_interval" json:"eval_interval" jsonschema:"minimum=1,description=Ticks between point set evaluations"`

	Log   LogConfig   `yaml:"log" json:"log"`
	World WorldConfig `yaml:"world" json:"world"`
	Agent AgentConfig `yaml:"agent" json:"agent"`
}

type LogConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose" jsonschema:"description=Include trace lines"`
	Color   bool `yaml:"color" json:"color" jsonschema:"description=Colour the level tags"`
}

type WorldConfig struct {
	Seed      int64   `yaml:"seed" json:"seed"`
	Size      float64 `yaml:"size" json:"size" jsonschema:"description=Side length of the square world"`
	Frequency float64 `yaml:"frequency" json:"frequency" jsonschema:"description=Noise frequency"`
	Threshold float64 `yaml:"threshold" json:"threshold" jsonschema:"minimum=-1,maximum=1,description=Noise level above which a cell holds a feature"`
	Cell      float64 `yaml:"cell" json:"cell" jsonschema:"description=Side length of a feature cell"`
}

type AgentConfig struct {
	Speed           float64 `yaml:"speed" json:"speed" jsonschema:"description=World units moved per tick"`
	SurveyRadius    float64 `yaml:"survey_radius" json:"survey_radius"`
	SurveyInterval  int64   `yaml:"survey_interval" json:"survey_interval" jsonschema:"minimum=1"`
	FrontierRing    float64 `yaml:"frontier_ring" json:"frontier_ring" jsonschema:"description=Distance at which new targets are sampled"`
	FrontierSamples int     `yaml:"frontier_samples" json:"frontier_samples" jsonschema:"minimum=1"`
}

func Default() Config {
	s := scheduler.DefaultConfig()
	w := sim.DefaultWorldConfig()
	a := sim.DefaultAgentConfig()
	return Config{
		Quantum:      s.Quantum,
		K0:           s.K0,
		MaxK:         s.MaxK,
		StepBudget:   s.StepBudget,
		StaleTicks:   s.StaleTicks,
		EvalInterval: s.EvalInterval,
		Log:          LogConfig{Color: true},
		World: WorldConfig{
			Seed:      w.Seed,
			Size:      w.Size,
			Frequency: w.Frequency,
			Threshold: w.Threshold,
			Cell:      w.Cell,
		},
		Agent: AgentConfig{
			Speed:           a.Speed,
			SurveyRadius:    a.SurveyRadius,
			SurveyInterval:  a.SurveyInterval,
			FrontierRing:    a.FrontierRing,
			FrontierSamples: a.FrontierSamples,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Quantum <= 0:
		return errors.Errorf("quantum must be positive, got %g", c.Quantum)
	case c.K0 < 3:
		return errors.Errorf("k0 must be at least 3, got %d", c.K0)
	case c.MaxK < c.K0:
		return errors.Errorf("max_k (%d) must not be below k0 (%d)", c.MaxK, c.K0)
	case c.StepBudget < 1:
		return errors.Errorf("step_budget must be positive, got %d", c.StepBudget)
	case c.StaleTicks < 0:
		return errors.Errorf("stale_ticks must not be negative, got %d", c.StaleTicks)
	case c.EvalInterval < 1:
		return errors.Errorf("eval_interval must be positive, got %d", c.EvalInterval)
	case c.World.Size <= 0 || c.World.Cell <= 0:
		return errors.New("world size and cell must be positive")
	case c.Agent.Speed <= 0 || c.Agent.SurveyRadius <= 0:
		return errors.New("agent speed and survey radius must be positive")
	case c.Agent.SurveyInterval < 1 || c.Agent.FrontierSamples < 1:
		return errors.New("agent survey interval and frontier samples must be positive")
	}
	return nil
}

func (c Config) Scheduler() scheduler.Config {
	return scheduler.Config{
		Quantum:      c.Quantum,
		K0:           c.K0,
		MaxK:         c.MaxK,
		StepBudget:   c.StepBudget,
		StaleTicks:   c.StaleTicks,
		EvalInterval: c.EvalInterval,
	}
}

func (c Config) WorldConfig() sim.WorldConfig {
	return sim.WorldConfig{
		Seed:      c.World.Seed,
		Size:      c.World.Size,
		Frequency: c.World.Frequency,
		Threshold: c.World.Threshold,
		Cell:      c.World.Cell,
	}
}

func (c Config) AgentConfig() sim.AgentConfig {
	return sim.AgentConfig{
		Speed:           c.Agent.Speed,
		SurveyRadius:    c.Agent.SurveyRadius,
		SurveyInterval:  c.Agent.SurveyInterval,
		FrontierRing:    c.Agent.FrontierRing,
		FrontierSamples: c.Agent.FrontierSamples,
	}
}

// Logger builds the logger the config asks for, writing to w.
func (c Config) Logger(w io.Writer) *dbg.Logger {
	level := dbg.LevelInfo
	if c.Log.Verbose {
		level = dbg.LevelTrace
	}
	return dbg.NewLogger(w, level, c.Log.Color)
}
