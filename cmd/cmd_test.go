package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/lifecycle/singleton/singletontest"
	"github.com/viant/lifecycle/transport"
)

func TestDemo(t *testing.T) {
	singletontest.Cleanup[*transport.Transport](t)

	var buf bytes.Buffer
	require.NoError(t, (&DemoCmd{}).run(&buf))

	expect := []string{
		"top of demo",
		"handle1+a+0",
		"handle1+b+1",
		"handle1+c+2",
		"handle1+d+3",
		"inside use_count=2",
		"is handle1 == handle2 = true",
		"is handle1 == handle3 = true",
		"handle3 name=handle1",
		"got lambda345 from callable",
		"got MyCallable data=1 arg=345 from callable",
		"got MyCallable data=2 arg=345 from callable",
		"after release use_count=0 live=false",
		`acquire "fail": got fail for name`,
		"bottom of demo",
	}
	assert.EqualValues(t, expect, strings.Split(strings.TrimSpace(buf.String()), "\n"))
}

func TestStress(t *testing.T) {
	var testCases = []struct {
		description string
		cmd         *StressCmd
	}{
		{description: "external lifetime", cmd: &StressCmd{Goroutines: 16, Iterations: 5}},
		{description: "keep alive", cmd: &StressCmd{Goroutines: 16, Iterations: 5, KeepAlive: true}},
	}
	for _, tc := range testCases {
		var buf bytes.Buffer
		err := tc.cmd.run(&buf)
		require.NoError(t, err, tc.description)
		assert.Contains(t, strings.ToLower(buf.String()), "stress", tc.description)
	}
}

func TestInspect(t *testing.T) {
	singletontest.Cleanup[*transport.Transport](t)

	var buf bytes.Buffer
	require.NoError(t, (&InspectCmd{Hold: true}).run(&buf))
	out := buf.String()
	assert.Contains(t, out, "singleton_constructed_total")
	assert.Contains(t, out, "singleton_discarded_total")
	assert.Contains(t, out, "transport")
}

func TestExtractOption(t *testing.T) {
	var testCases = []struct {
		args   []string
		expect string
	}{
		{[]string{"-f", "a.yaml", "demo"}, "a.yaml"},
		{[]string{"demo", "--config", "b.yaml"}, "b.yaml"},
		{[]string{"--config=c.yaml", "demo"}, "c.yaml"},
		{[]string{"demo"}, ""},
		{[]string{"demo", "-f"}, ""},
	}
	for i, tc := range testCases {
		if got := extractOption(tc.args, "-f", "--config"); got != tc.expect {
			t.Fatalf("[%d] extractOption(%v) = %q; expected %q", i, tc.args, got, tc.expect)
		}
	}
}

func TestCommandName(t *testing.T) {
	var testCases = []struct {
		args   []string
		expect string
	}{
		{[]string{"demo"}, "demo"},
		{[]string{"-f", "a.yaml", "stress", "-g", "4"}, "stress"},
		{[]string{"--log-level", "debug", "inspect"}, "inspect"},
		{[]string{"--config=a.yaml", "demo"}, "demo"},
		{nil, ""},
	}
	for i, tc := range testCases {
		if got := commandName(tc.args); got != tc.expect {
			t.Fatalf("[%d] commandName(%v) = %q; expected %q", i, tc.args, got, tc.expect)
		}
	}
}

func TestLoadSettings(t *testing.T) {
	s := loadSettings("")
	require.True(t, s.InstanceOK())
	assert.EqualValues(t, []string{"handle1"}, s.cfg.Demo.Names)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stress: ["), 0o644))
	s = loadSettings(path)
	assert.False(t, s.InstanceOK())
	assert.Error(t, s.InstanceResultValue())
}
