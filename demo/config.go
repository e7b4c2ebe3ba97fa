package demo

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/faultbook/faultbook"
)

// Defaults applied when the config file is absent or partial.
const (
	DefaultTimeout     = 10 * time.Second
	DefaultParallelism = 4
	DefaultConfigFile  = "faultbook.yaml"
)

// Duration is a time.Duration that unmarshals from YAML strings like "250ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return faultbook.Wrap(err, "decode duration", faultbook.ClassValidation)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return faultbook.Wrap(err, "parse duration",
			faultbook.ClassValidation, faultbook.CategoryConfig, "value", raw)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// LoggingConfig configures the logbook logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Config holds runner configuration.
type Config struct {
	// Timeout bounds a single demo run.
	Timeout Duration `yaml:"timeout"`
	// Parallelism bounds how many demos run at once.
	Parallelism int `yaml:"parallelism"`
	// Topics restricts runs to the listed topics when non-empty.
	Topics []string `yaml:"topics"`
	// Skip lists demo names that are never run.
	Skip []string `yaml:"skip"`
	// Logging configures the logger.
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Timeout:     Duration(DefaultTimeout),
		Parallelism: DefaultParallelism,
		Logging:     LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path means
// DefaultConfigFile, and its absence is not an error; an explicit path must
// exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, faultbook.Wrap(err, "read config",
			faultbook.CategoryConfig, "path", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, faultbook.Wrap(err, "parse config",
			faultbook.ClassValidation, faultbook.CategoryConfig, "path", path)
	}
	if cfg.Parallelism < 0 {
		return cfg, faultbook.New("parallelism must not be negative",
			faultbook.ClassValidation, faultbook.CategoryConfig,
			"parallelism", cfg.Parallelism)
	}
	return cfg, nil
}

// Select filters the registry's demos by the config's topics and skip list,
// returning the names to run.
func (c Config) Select(reg *Registry) []string {
	topics := make(map[string]bool, len(c.Topics))
	for _, topic := range c.Topics {
		topics[topic] = true
	}
	skip := make(map[string]bool, len(c.Skip))
	for _, name := range c.Skip {
		skip[name] = true
	}

	var names []string
	for _, d := range reg.All() {
		if len(topics) > 0 && !topics[d.Topic] {
			continue
		}
		if skip[d.Name] {
			continue
		}
		names = append(names, d.Name)
	}
	return names
}
