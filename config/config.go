// Package config provides the process-wide configuration: fixed sampling
// and monitoring parameters, the set of OpenAI-API-compatible service
// identifiers, and the data directory, which is created at load time.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration so TOML files can carry values like "10ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config holds the static process parameters. Construct it once at startup
// and pass it to whoever needs it; there are no update operations.
type Config struct {
	// SampleFrequency is the interval between power-draw samples taken
	// while a completion is in flight.
	SampleFrequency Duration `toml:"sample_frequency"`

	// LLMServiceKeyword names the systemd unit serving the local LLM.
	LLMServiceKeyword string `toml:"llm_service_keyword"`

	// MonitoringServiceKeyword names the power-monitoring unit.
	MonitoringServiceKeyword string `toml:"monitoring_service_keyword"`

	// MonitoringStartDelay and MonitoringEndDelay pad the monitoring
	// window around each completion.
	MonitoringStartDelay Duration `toml:"monitoring_start_delay"`
	MonitoringEndDelay   Duration `toml:"monitoring_end_delay"`

	// OpenAICompatibleServices lists the service identifiers whose
	// backends speak the OpenAI chat-completion response shape.
	OpenAICompatibleServices []string `toml:"openai_compatible_services"`

	// DataDir is where measurement data lands. Created on Load.
	DataDir string `toml:"data_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SampleFrequency:          Duration{10 * time.Millisecond},
		LLMServiceKeyword:        "ollamaserve",
		MonitoringServiceKeyword: "scaphandre",
		MonitoringStartDelay:     Duration{time.Second},
		MonitoringEndDelay:       Duration{time.Second},
		OpenAICompatibleServices: []string{"openai", "llamafile", "vllm"},
		DataDir:                  "./data",
	}
}

// Load overlays the TOML file at path (when non-empty) over the defaults
// and ensures the data directory exists. A directory that cannot be
// created is a startup failure, not something to discover later.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}
	if err := cfg.ensureDirs(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ensureDirs creates the configured directories. Creating an existing
// directory is not an error.
func (c *Config) ensureDirs() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory %s: %w", c.DataDir, err)
	}
	return nil
}

// IsOpenAICompatible reports whether service is in the configured
// OpenAI-compatible set.
func (c *Config) IsOpenAICompatible(service string) bool {
	for _, s := range c.OpenAICompatibleServices {
		if service == s {
			return true
		}
	}
	return false
}
