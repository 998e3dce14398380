package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	var testCases = []struct {
		description string
		content     string
		expect      *Config
		expectErr   bool
	}{
		{
			description: "defaults",
			content:     "{}",
			expect: &Config{
				Log:    &Log{},
				Stress: &Stress{Goroutines: DefaultGoroutines, Iterations: DefaultIterations},
				Demo:   &Demo{Names: []string{DefaultName}},
			},
		},
		{
			description: "explicit",
			content: `
log:
  level: debug
stress:
  goroutines: 8
  iterations: 3
  keepAlive: true
demo:
  names: [a, fail]
`,
			expect: &Config{
				Log:    &Log{Level: "debug"},
				Stress: &Stress{Goroutines: 8, Iterations: 3, KeepAlive: true},
				Demo:   &Demo{Names: []string{"a", "fail"}},
			},
		},
		{
			description: "negative goroutines",
			content:     "stress:\n  goroutines: -1\n",
			expectErr:   true,
		},
		{
			description: "malformed",
			content:     "stress: [",
			expectErr:   true,
		},
	}

	for _, tc := range testCases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644), tc.description)
		cfg, err := Load(context.Background(), path)
		if tc.expectErr {
			assert.Error(t, err, tc.description)
			continue
		}
		require.NoError(t, err, tc.description)
		assert.EqualValues(t, tc.expect, cfg, tc.description)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
