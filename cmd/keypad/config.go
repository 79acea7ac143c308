package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/maisem/keypad"
	"github.com/sirupsen/logrus"
)

// Config is read from KEYPAD_* environment variables and then overridden
// by flags.
type Config struct {
	Depths     string `envconfig:"DEPTHS" default:"2,25"`
	Strategy   string `envconfig:"STRATEGY" default:"hillclimb"`
	MaxBuckets int    `envconfig:"MAX_BUCKETS" default:"16"`
	MaxPasses  int    `envconfig:"MAX_PASSES" default:"0"`
	Debug      bool   `envconfig:"DEBUG" default:"false"`
	Sequence   bool   `envconfig:"SEQUENCE" default:"false"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("keypad", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return cfg, nil
}

// depths parses the comma separated chain depths.
func (c *Config) depths() ([]int, error) {
	var out []int
	for _, f := range strings.Split(c.Depths, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		d, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad depth %q: %w", f, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("%w: %d", keypad.ErrNegativeDepth, d)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no depths in %q", c.Depths)
	}
	return out, nil
}

// strategy returns the configured preference search.
func (c *Config) strategy(log logrus.FieldLogger) (keypad.Strategy, error) {
	switch c.Strategy {
	case "hillclimb", "":
		return keypad.HillClimb{MaxPasses: c.MaxPasses, Log: log}, nil
	case "exhaustive":
		return keypad.Exhaustive{MaxBuckets: c.MaxBuckets, Log: log}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", c.Strategy)
}
