// Package config holds the engine configuration loaded from YAML, with
// defaults matching the standard movement rules.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Engine holds all tunables of the movement engine and the pathprobe tool.
type Engine struct {
	LogLevel string `yaml:"log_level"`

	// Host grid geometry, used when running standalone without a host
	// renderer supplying hex geometry.
	HexSizePx float64 `yaml:"hex_size_px"`
	GridCols  int     `yaml:"grid_cols"`
	GridRows  int     `yaml:"grid_rows"`

	// Movement cost model.
	Costs Costs `yaml:"costs"`
}

// Costs mirrors the movement cost table: land tiers and water entry costs.
type Costs struct {
	Open             float64 `yaml:"open"`
	Difficult        float64 `yaml:"difficult"`
	GreaterDifficult float64 `yaml:"greater_difficult"`
	LakeWater        float64 `yaml:"lake_water"`
	SwampWater       float64 `yaml:"swamp_water"`
}

// DefaultEngine returns the standard configuration.
func DefaultEngine() Engine {
	return Engine{
		LogLevel:  "info",
		HexSizePx: 100,
		GridCols:  30,
		GridRows:  30,
		Costs: Costs{
			Open:             1,
			Difficult:        2,
			GreaterDifficult: 3,
			LakeWater:        1,
			SwampWater:       2,
		},
	}
}

// LoadEngine loads engine config from a YAML file. A missing file returns
// defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
