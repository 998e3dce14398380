package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	var testCases = []struct {
		raw   string
		level zerolog.Level
		ok    bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARNING ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for i, tc := range testCases {
		level, ok := ParseLevel(tc.raw)
		if level != tc.level || ok != tc.ok {
			t.Fatalf("[%d] ParseLevel(%q) = %v,%v; expected %v,%v", i, tc.raw, level, ok, tc.level, tc.ok)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.WarnLevel, NoColor: true, Out: &buf})

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogNoColor, "true")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	assert.EqualValues(t, zerolog.ErrorLevel, cfg.Level)
	assert.True(t, cfg.NoColor)
}

func TestConfigureTests(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	logger := ConfigureTests()
	assert.EqualValues(t, zerolog.DebugLevel, logger.GetLevel())
	assert.EqualValues(t, zerolog.DebugLevel, Component("test").GetLevel())

	again := Configure(ProfileRuntime)
	assert.EqualValues(t, zerolog.DebugLevel, again.GetLevel(), "the first profile wins")
}
