// Package config loads the ambient bemcore configuration file (app name,
// logging level, and the SimulationConfig physics/solver/controller
// payload) via viper, generalising the teacher's singleton-plus-Validate
// pattern.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

var (
	once sync.Once
	cfg  *Config
)

// Load reads config.{yaml,yml,json,toml} from the given search paths (or
// "." if none given), unmarshals it, validates it, and caches the result.
// Subsequent calls return the cached value regardless of path.
func Load(searchPaths ...string) (*Config, error) {
	var loadErr error
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")

		if len(searchPaths) == 0 {
			searchPaths = []string{"."}
		}
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}

		if err := v.ReadInConfig(); err != nil {
			loadErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}

		var loaded Config
		if err := v.Unmarshal(&loaded); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal config: %w", err)
			return
		}

		if err := loaded.Validate(); err != nil {
			loadErr = fmt.Errorf("failed to validate config: %w", err)
			return
		}

		cfg = &loaded
	})

	if loadErr != nil {
		return nil, loadErr
	}
	if cfg == nil {
		return nil, errors.New("failed to load configuration")
	}
	return cfg, nil
}

// Reset clears the configuration singleton; used by tests.
func Reset() {
	once = sync.Once{}
	cfg = nil
}

// Validate checks required fields are present and the physical and solver
// constants are sane.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Logging.Level == "" {
		return fmt.Errorf("logging.level is required")
	}
	if c.Physics.AirDensity <= 0 {
		return fmt.Errorf("physics.air_density must be positive")
	}
	if c.Solver.ConvergenceTolerance <= 0 {
		return fmt.Errorf("solver.convergence_tolerance must be positive")
	}
	if c.Solver.WakeTransition <= 0 || c.Solver.WakeTransition >= 1 {
		return fmt.Errorf("solver.wake_transition must be in (0, 1)")
	}
	if c.Controller.RatedPower <= 0 {
		return fmt.Errorf("controller.rated_power must be positive")
	}
	if c.WindSweep.Step <= 0 {
		return fmt.Errorf("wind_sweep.step must be positive")
	}
	if c.WindSweep.End < c.WindSweep.Start {
		return fmt.Errorf("wind_sweep.end must be >= wind_sweep.start")
	}
	return nil
}
