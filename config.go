package needle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig holds the engine's tunable knobs. The zero value is
// already spec-correct: the engine constructors fill every zero field
// from DefaultEngineConfig.
type EngineConfig struct {
	// TopK caps the number of results FindTopDocuments returns.
	TopK int `yaml:"topK"`
	// RelevanceTolerance is the |Δ| below which two relevance scores
	// are treated as tied and broken by rating.
	RelevanceTolerance float64 `yaml:"relevanceTolerance"`
	// AccumulatorShards is the shard count for the parallel ranking
	// path's ConcurrentAccumulator.
	AccumulatorShards int `yaml:"accumulatorShards"`
}

// DefaultEngineConfig returns the engine's production defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TopK:               5,
		RelevanceTolerance: 1e-6,
		AccumulatorShards:  defaultAccumulatorShards,
	}
}

// withDefaults fills any zero-valued field of cfg with its default,
// so a caller can construct EngineConfig{} and still get spec-correct
// behavior without loading a file.
func (cfg EngineConfig) withDefaults() EngineConfig {
	defaults := DefaultEngineConfig()
	if cfg.TopK == 0 {
		cfg.TopK = defaults.TopK
	}
	if cfg.RelevanceTolerance == 0 {
		cfg.RelevanceTolerance = defaults.RelevanceTolerance
	}
	if cfg.AccumulatorShards == 0 {
		cfg.AccumulatorShards = defaults.AccumulatorShards
	}
	return cfg
}

// LoadEngineConfig reads an EngineConfig from a YAML file, layering it
// over DefaultEngineConfig so any field the file omits keeps its
// default value.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("reading engine config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parsing engine config %s: %w", path, err)
	}
	return cfg, nil
}
