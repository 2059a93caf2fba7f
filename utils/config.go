package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

const (
	PolicyRandom = "random"
	PolicyDead   = "dead"
	PolicyAlive  = "alive"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               uint32        `json:"width"`
	Height              uint32        `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	InitPolicy          string        `json:"init_policy"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	SeedPatterns        bool          `json:"seed_patterns"`
	Workers             int           `json:"workers"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	InjectionCount      int           `json:"injection_count"`
	RefreshInterval     uint64        `json:"refresh_interval"`
	MaxGenerations      uint64        `json:"max_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		InitPolicy:          PolicyRandom,
		RandomDensity:       0.5,
		Workers:             1,
		AutoRestart:         true,
		StagnationThreshold: 5,
		InjectionCount:      3,
		RefreshInterval:     200,
		MaxGenerations:      1000,
	}
}

// LoadConfig overlays a JSON file on DefaultConfig. Unknown keys are rejected
// so a misspelled field does not silently keep its default.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to open file: %+v", filename)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(&config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to decode file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks the fields a world cannot be built without
func (c Config) Validate() error {
	switch {
	case c.Width == 0 || c.Height == 0:
		return errors.Wrapf(ErrInvalidConfig, "dimensions %dx%d", c.Width, c.Height)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density %v", c.RandomDensity)
	case c.InjectionCount < 0:
		return errors.Wrapf(ErrInvalidConfig, "injection_count %d", c.InjectionCount)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold %d", c.StagnationThreshold)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	return nil
}

// Policy maps init_policy onto a world initialization policy
func (c Config) Policy() (model.InitPolicy, error) {
	switch c.InitPolicy {
	case PolicyRandom, "":
		return model.RandomUniform(c.RandomDensity), nil
	case PolicyDead:
		return model.AllDead(), nil
	case PolicyAlive:
		return model.AllAlive(), nil
	default:
		return model.InitPolicy{}, errors.Wrapf(ErrInvalidConfig, "init_policy %q", c.InitPolicy)
	}
}
