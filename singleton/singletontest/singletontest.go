// Package singletontest provides reset hooks for process-wide singletons.
// Production code must not import it: resetting drops the keep-alive owner
// and forgets the published instance so that a test can start from scratch.
package singletontest

import (
	"reflect"
	"testing"

	"github.com/viant/lifecycle/internal/registry"
)

// Reset clears every shared wrapper bound for T, whatever its argument type,
// kind or policy. It returns the number of wrappers reset.
func Reset[T any]() int {
	typ := reflect.TypeFor[T]()
	return registry.Reset(func(key registry.Key) bool { return key.Type == typ })
}

// ResetAll clears every shared wrapper.
func ResetAll() int {
	return registry.Reset(nil)
}

// Cleanup registers Reset[T] to run when t finishes.
func Cleanup[T any](t testing.TB) {
	t.Helper()
	t.Cleanup(func() { Reset[T]() })
}
