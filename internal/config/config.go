package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prefs holds simulation preferences. Zero values are filled in from
// Default, so a partial file only overrides what it names.
type Prefs struct {
	Gravity     [3]float32 `json:"gravity" yaml:"gravity"`
	TimeStep    float32    `json:"time_step" yaml:"time_step"`
	MaxSubsteps int        `json:"max_substeps" yaml:"max_substeps"`
}

// Default returns the standard simulation preferences: earth gravity on -Y
// and a 60 Hz fixed timestep.
func Default() Prefs {
	return Prefs{
		Gravity:     [3]float32{0, -9.8, 0},
		TimeStep:    1.0 / 60.0,
		MaxSubsteps: 64,
	}
}

// Load reads preferences from a .json, .yaml or .yml file. On any error
// the defaults are returned along with the error, so callers can log and
// keep going.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}

	p := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Default(), fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return Default(), fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return Default(), fmt.Errorf("unsupported config format: %s", path)
	}

	if p.TimeStep <= 0 {
		p.TimeStep = Default().TimeStep
	}
	if p.MaxSubsteps <= 0 {
		p.MaxSubsteps = Default().MaxSubsteps
	}
	return p, nil
}
