// Package config loads runtime settings from an optional YAML file and
// TERMQUEST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/termquest/internal/event"
)

// Config holds game configuration options.
type Config struct {
	// TickRate is the number of clock ticks per second.
	TickRate float64 `yaml:"tickRate" env:"TERMQUEST_TICK_RATE" envDefault:"7"`

	// PollBudget is how long the update loop collects input per iteration.
	PollBudget time.Duration `yaml:"pollBudget" env:"TERMQUEST_POLL_BUDGET" envDefault:"25ms"`

	// TurnEvery is the number of ticks between two turn advances.
	TurnEvery int `yaml:"turnEvery" env:"TERMQUEST_TURN_EVERY" envDefault:"7"`

	// Lossless delivers every input event instead of only the latest one
	// per poll.
	Lossless bool `yaml:"lossless" env:"TERMQUEST_LOSSLESS"`

	Heroes  int `yaml:"heroes" env:"TERMQUEST_HEROES" envDefault:"3"`
	Enemies int `yaml:"enemies" env:"TERMQUEST_ENEMIES" envDefault:"3"`

	// Seed is a phrase hashed into the RNG seed, for reproducible
	// encounters. Empty means a time based seed.
	Seed string `yaml:"seed" env:"TERMQUEST_SEED"`

	LogFile  string `yaml:"logFile" env:"TERMQUEST_LOG_FILE" envDefault:"termquest.log"`
	LogLevel string `yaml:"logLevel" env:"TERMQUEST_LOG_LEVEL" envDefault:"info"`

	// Telemetry enables OTLP trace export.
	Telemetry bool   `yaml:"telemetry" env:"TERMQUEST_TELEMETRY"`
	Dataset   string `yaml:"dataset" env:"HONEYCOMB_TERMQUEST_DATASET" envDefault:"termquest"`
}

// FileEnv names the variable pointing at an optional YAML config file.
const FileEnv = "TERMQUEST_CONFIG"

// Load reads the YAML file named by TERMQUEST_CONFIG, if set, then applies
// environment variables on top and validates the result.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv(FileEnv); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	// Defaults are already in place; only variables that are set may
	// override the file.
	if err := env.ParseWithOptions(&cfg, env.Options{DefaultValueTagName: "envNoDefault"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(err)
	}
	return cfg
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the settings can run a game.
func (c Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate must be positive, got %v", ErrInvalid, c.TickRate)
	case c.PollBudget < 0:
		return fmt.Errorf("%w: poll budget must not be negative, got %v", ErrInvalid, c.PollBudget)
	case c.TurnEvery <= 0:
		return fmt.Errorf("%w: turn cadence must be positive, got %d", ErrInvalid, c.TurnEvery)
	case c.Heroes+c.Enemies <= 0:
		return fmt.Errorf("%w: encounter needs at least one participant", ErrInvalid)
	case c.Heroes < 0 || c.Enemies < 0:
		return fmt.Errorf("%w: participant counts must not be negative", ErrInvalid)
	}
	return nil
}

// TickInterval returns the time between two ticks.
func (c Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.TickRate)
}

// Policy returns the dispatcher policy selected by Lossless.
func (c Config) Policy() event.Policy {
	if c.Lossless {
		return event.Oldest
	}
	return event.Latest
}

// Seed64 returns the RNG seed: a hash of Seed, or the current time when
// Seed is empty.
func (c Config) Seed64() int64 {
	if c.Seed == "" {
		return time.Now().UnixNano()
	}
	return int64(xxhash.Sum64String(c.Seed))
}
