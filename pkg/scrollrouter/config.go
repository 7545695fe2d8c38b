package scrollrouter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/constants"
)

// Config is the TOML configuration file.
type Config struct {
	Scroll ScrollConfig `toml:"scroll"`
	Log    LogConfig    `toml:"log"`
}

// ScrollConfig holds the scroll tuning.
type ScrollConfig struct {
	ThrottleMS       int     `toml:"throttle_ms"`
	MinDelta         float64 `toml:"min_delta"`
	ActivationOffset float64 `toml:"activation_offset"`
	UpwardLead       float64 `toml:"upward_lead"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn" or "error"
	Path  string `toml:"path"`  // Log file path; empty logs to stdout only
}

const defaultConfigTOML = `# scrollrouter configuration
# Distances are in viewport units (pixels, or rows in a terminal).

[scroll]
throttle_ms = 60
min_delta = 100
activation_offset = 90
upward_lead = 30

[log]
level = "info"
path = ""
`

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Scroll: ScrollConfig{
			ThrottleMS:       int(constants.DefaultThrottleInterval / time.Millisecond),
			MinDelta:         constants.DefaultMinScrollDelta,
			ActivationOffset: constants.DefaultActivationOffset,
			UpwardLead:       constants.DefaultUpwardLead,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultConfigTOML returns the commented default configuration file.
func DefaultConfigTOML() string {
	return defaultConfigTOML
}

// ParseConfig decodes TOML on top of the defaults and applies environment
// overrides. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("parse config: unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the config file at path. A missing file yields the
// defaults with environment overrides.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func (c *Config) applyEnv() {
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(constants.LogPathEnvVar); v != "" {
		c.Log.Path = v
	}
}

// Validate rejects negative tuning values.
func (c Config) Validate() error {
	switch {
	case c.Scroll.ThrottleMS < 0:
		return fmt.Errorf("config: throttle_ms must not be negative, got %d", c.Scroll.ThrottleMS)
	case c.Scroll.MinDelta < 0:
		return fmt.Errorf("config: min_delta must not be negative, got %v", c.Scroll.MinDelta)
	case c.Scroll.UpwardLead < 0:
		return fmt.Errorf("config: upward_lead must not be negative, got %v", c.Scroll.UpwardLead)
	}
	return nil
}

// ThrottleInterval returns the configured throttle window.
func (c Config) ThrottleInterval() time.Duration {
	return time.Duration(c.Scroll.ThrottleMS) * time.Millisecond
}

// Apply copies the scroll tuning into opts.
func (c Config) Apply(opts *Options) {
	opts.ThrottleInterval = c.ThrottleInterval()
	opts.MinScrollDelta = c.Scroll.MinDelta
	opts.Threshold = Threshold{
		Offset:     c.Scroll.ActivationOffset,
		UpwardLead: c.Scroll.UpwardLead,
	}
}
