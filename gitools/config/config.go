package config

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/github/go-config"
)

// Config holds process-wide defaults for the resampling commands. All
// fields can be overridden per command with flags; the environment only
// seeds the flag defaults.
type Config struct {
	Workers int

	Degree     int    `config:"1,env=GPXINTERP_DEG"`
	Num        int    `config:"0,env=GPXINTERP_NUM"`
	Resolution string `config:"1,env=GPXINTERP_RES"`
	EnvWorkers int    `config:"0,env=GPXINTERP_WORKERS"`
}

// Load parses configuration from the environment and places it in a
// newly allocated Config struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := config.Load(cfg); err != nil {
		return nil, err
	}

	cfg.Workers = cfg.EnvWorkers
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if _, err := cfg.Res(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Res returns the default resolution in meters.
func (c *Config) Res() (float64, error) {
	res, err := strconv.ParseFloat(c.Resolution, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid resolution %q: %w", c.Resolution, err)
	}
	return res, nil
}
