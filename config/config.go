package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGoroutines = 64
	DefaultIterations = 100
	DefaultName       = "handle1"
)

// Log configures the CLI logger.
type Log struct {
	Level   string `yaml:"level,omitempty" json:"level,omitempty"`
	NoColor bool   `yaml:"noColor,omitempty" json:"noColor,omitempty"`
}

// Stress configures the stress command.
type Stress struct {
	Goroutines int  `yaml:"goroutines,omitempty" json:"goroutines,omitempty"`
	Iterations int  `yaml:"iterations,omitempty" json:"iterations,omitempty"`
	KeepAlive  bool `yaml:"keepAlive,omitempty" json:"keepAlive,omitempty"`
}

// Demo configures the transport demo.
type Demo struct {
	Names []string `yaml:"names,omitempty" json:"names,omitempty"`
}

type Config struct {
	Log    *Log    `yaml:"log,omitempty" json:"log,omitempty"`
	Stress *Stress `yaml:"stress,omitempty" json:"stress,omitempty"`
	Demo   *Demo   `yaml:"demo,omitempty" json:"demo,omitempty"`
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load downloads and decodes the configuration stored at URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", URL, err)
	}
	return &cfg, nil
}

// Validate fills in defaults and rejects negative counts.
func (c *Config) Validate() error {
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Stress == nil {
		c.Stress = &Stress{}
	}
	if c.Stress.Goroutines < 0 || c.Stress.Iterations < 0 {
		return fmt.Errorf("stress goroutines and iterations must not be negative")
	}
	if c.Stress.Goroutines == 0 {
		c.Stress.Goroutines = DefaultGoroutines
	}
	if c.Stress.Iterations == 0 {
		c.Stress.Iterations = DefaultIterations
	}
	if c.Demo == nil {
		c.Demo = &Demo{}
	}
	if len(c.Demo.Names) == 0 {
		c.Demo.Names = []string{DefaultName}
	}
	return nil
}
