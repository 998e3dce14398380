package singleton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/lifecycle/singleton"
	"github.com/viant/lifecycle/singleton/singletontest"
)

type sharedConfig struct {
	name string
}

func newSharedConfig(name string) *sharedConfig { return &sharedConfig{name: name} }

type sharedProbe struct{ ok bool }

func (p *sharedProbe) InstanceOK() bool { return p.ok }

func TestShared_OneSlotPerKey(t *testing.T) {
	singletontest.Cleanup[*sharedConfig](t)

	first := singleton.Shared(newSharedConfig)
	second := singleton.Shared(func(string) *sharedConfig { return &sharedConfig{name: "ignored"} })

	h1 := first.Acquire("a")
	defer h1.Release()
	h2 := second.Acquire("b")
	defer h2.Release()

	assert.True(t, h1.Same(h2))
	assert.EqualValues(t, "a", h2.Instance().name)
	assert.EqualValues(t, 1, second.Stats().Constructed)

	keepAlive := singleton.Shared(newSharedConfig, singleton.WithKeepAlive())
	h3 := keepAlive.Acquire("c")
	defer h3.Release()
	assert.False(t, h3.Same(h1), "policy is part of the key")
}

func TestShared_ResetDropsKeepAlive(t *testing.T) {
	singletontest.Cleanup[*sharedConfig](t)
	w := singleton.Shared(newSharedConfig, singleton.WithKeepAlive(), singleton.WithName("shared-config"))

	h := w.Acquire("one")
	h.Release()
	require.True(t, w.Live())

	assert.GreaterOrEqual(t, singletontest.Reset[*sharedConfig](), 1)
	assert.False(t, w.Live())

	h = w.Acquire("two")
	defer h.Release()
	assert.EqualValues(t, "two", h.Instance().name)
}

func TestSharedChecked_AndStats(t *testing.T) {
	singletontest.Cleanup[*sharedProbe](t)
	w := singleton.SharedChecked(func(ok bool) *sharedProbe { return &sharedProbe{ok: ok} }, singleton.WithName("shared-probe"))

	_, err := w.Acquire(false)
	assert.ErrorIs(t, err, singleton.ErrInvalidInstance)
	h, err := w.Acquire(true)
	require.NoError(t, err)
	defer h.Release()

	var found bool
	for _, stats := range singleton.SharedStats() {
		if stats.Name != "shared-probe" {
			continue
		}
		found = true
		assert.EqualValues(t, 2, stats.Constructed)
		assert.EqualValues(t, 1, stats.Discarded)
		assert.EqualValues(t, 1, stats.UseCount)
		assert.True(t, stats.Live)
	}
	assert.True(t, found)
}
