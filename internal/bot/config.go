// Package bot wires the solver into a playable controller: game lifecycle,
// piece entry, sequence execution, and automatic benchmark games.
package bot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kiratopat/blockblast/internal/engine"
)

// fileConfig mirrors engine.Config in a YAML document. Absent fields keep
// their defaults.
type fileConfig struct {
	BeamWidth        *int     `yaml:"beam_width"`
	MaxDepth         *int     `yaml:"max_depth"`
	PruningThreshold *float64 `yaml:"pruning_threshold"`
	UseParallel      *bool    `yaml:"use_parallel"`
	NumThreads       *int     `yaml:"num_threads"`
	Weights          *struct {
		EmptySpace     *float64 `yaml:"empty_space"`
		Combo          *float64 `yaml:"combo"`
		Survival       *float64 `yaml:"survival"`
		HeightVariance *float64 `yaml:"height_variance"`
		Holes          *float64 `yaml:"holes"`
	} `yaml:"weights"`
}

// LoadConfigFile reads a YAML solver configuration, layered over the
// defaults, and validates the result.
func LoadConfigFile(path string) (engine.Config, error) {
	cfg := engine.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if fc.BeamWidth != nil {
		cfg.BeamWidth = *fc.BeamWidth
	}
	if fc.MaxDepth != nil {
		cfg.MaxDepth = *fc.MaxDepth
	}
	if fc.PruningThreshold != nil {
		cfg.PruningThreshold = *fc.PruningThreshold
	}
	if fc.UseParallel != nil {
		cfg.UseParallel = *fc.UseParallel
	}
	if fc.NumThreads != nil {
		cfg.NumThreads = *fc.NumThreads
	}
	if fc.Weights != nil {
		w := &cfg.Weights
		if fc.Weights.EmptySpace != nil {
			w.EmptySpace = *fc.Weights.EmptySpace
		}
		if fc.Weights.Combo != nil {
			w.Combo = *fc.Weights.Combo
		}
		if fc.Weights.Survival != nil {
			w.Survival = *fc.Weights.Survival
		}
		if fc.Weights.HeightVariance != nil {
			w.HeightVariance = *fc.Weights.HeightVariance
		}
		if fc.Weights.Holes != nil {
			w.Holes = *fc.Weights.Holes
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
