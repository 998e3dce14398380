// Package registry holds the process-wide table of shared singleton slots.
// It lives under internal so that only this module (the singleton package and
// its test harness) can reach the reset hooks.
package registry

import (
	"reflect"

	"github.com/viant/lifecycle/internal/syncmap"
)

// Key identifies one shared slot: the wrapped type, the constructor argument
// type, the capability kind and the lifetime policy.
type Key struct {
	Type      reflect.Type
	Args      reflect.Type
	Kind      int
	KeepAlive bool
}

// Entry is a registered slot together with its reset hook.
type Entry struct {
	Value any
	Reset func()
}

// Default is the process-wide registry.
var Default = syncmap.New[Key, *Entry]()

// Reset invokes the reset hook of every entry whose key matches and returns
// how many entries were reset. Entries stay registered so that wrappers
// handed out earlier keep pointing at the same slot.
func Reset(match func(Key) bool) int {
	var hooks []func()
	Default.Range(func(key Key, entry *Entry) bool {
		if match == nil || match(key) {
			hooks = append(hooks, entry.Reset)
		}
		return true
	})
	for _, hook := range hooks {
		hook()
	}
	return len(hooks)
}
