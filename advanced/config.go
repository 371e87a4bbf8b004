package advanced

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Tuning for the geometric predicates. The zero value of any field means
// "use the default".
type Config struct {
	// Coordinates closer than this are treated as equal. This drives duplicate
	// detection and the degenerate triangle check.
	Tolerance float64     `yaml:"tolerance"`
	// Slack allowed on barycentric coordinates when testing whether a query
	// point is inside a triangle. Points on shared edges need this to be found
	// reliably.
	Epsilon   float64     `yaml:"epsilon"`
	// Receives a debug entry for every insertion step. Nil disables logging.
	Logger    *zap.Logger `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Tolerance: Tolerance,
		Epsilon:   Epsilon,
		Logger:    zap.NewNop(),
	}
}

// Fill in defaults for any unset field.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Tolerance <= 0 {
		c.Tolerance = defaults.Tolerance
	}
	if c.Epsilon <= 0 {
		c.Epsilon = defaults.Epsilon
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
	return c
}

// Read a YAML config. Missing keys keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if config.Tolerance < 0 || config.Epsilon < 0 {
		return Config{}, errors.Errorf("tolerance and epsilon must not be negative (got %v, %v)", config.Tolerance, config.Epsilon)
	}
	return config.withDefaults(), nil
}
