package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/viant/lifecycle/config"
	"github.com/viant/lifecycle/internal/logging"
	"github.com/viant/lifecycle/singleton"
)

var (
	cfgPath  string
	logLevel string
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// settings singleton can be created lazily by whichever sub-command runs
// first.
func setConfigPath(p string) { cfgPath = p }

func setLogLevel(level string) { logLevel = level }

// settings is the loaded CLI configuration; a load error makes it invalid.
type settings struct {
	cfg *config.Config
	err error
}

func (s *settings) InstanceOK() bool { return s.err == nil }

func (s *settings) InstanceResultValue() error { return s.err }

func loadSettings(path string) *settings {
	if path == "" {
		return &settings{cfg: config.Default()}
	}
	cfg, err := config.Load(context.Background(), path)
	return &settings{cfg: cfg, err: err}
}

var settingsSingleton = singleton.NewWithResult[error](loadSettings,
	singleton.WithKeepAlive(), singleton.WithName("cli-settings"))

// configSingleton loads the configuration once and reuses it across
// sub-commands within the same CLI invocation. A failed load is retried on
// the next call.
func configSingleton() (*config.Config, error) {
	h, err := settingsSingleton.Acquire(cfgPath)
	if err != nil {
		if cause, ok := settingsSingleton.Result(err); ok {
			return nil, cause
		}
		return nil, err
	}
	defer h.Release()
	cfg := h.Instance().cfg
	configureLogging(cfg)
	return cfg, nil
}

func configureLogging(cfg *config.Config) zerolog.Logger {
	return logging.ConfigureRuntime(func(c *logging.Config) {
		level := cfg.Log.Level
		if logLevel != "" {
			level = logLevel
		}
		if lvl, ok := logging.ParseLevel(level); ok {
			c.Level = lvl
		}
		if cfg.Log.NoColor {
			c.NoColor = true
		}
	})
}

// renderStats prints one row per wrapper.
func renderStats(w io.Writer, stats ...singleton.Stats) error {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Kind", "Policy", "Constructed", "Discarded", "Destroyed", "Acquired", "Live", "Use Count")
	for _, s := range stats {
		table.Append([]string{
			s.Name,
			s.Kind.String(),
			s.Policy.String(),
			strconv.FormatUint(s.Constructed, 10),
			strconv.FormatUint(s.Discarded, 10),
			strconv.FormatUint(s.Destroyed, 10),
			strconv.FormatUint(s.Acquired, 10),
			strconv.FormatBool(s.Live),
			strconv.FormatInt(s.UseCount, 10),
		})
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render stats: %w", err)
	}
	return nil
}
