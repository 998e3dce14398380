package syncmap

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_GetOrCreate(t *testing.T) {
	m := New[string, int]()
	var calls int32
	create := func() int {
		atomic.AddInt32(&calls, 1)
		return 42
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _ := m.GetOrCreate("answer", create)
			assert.EqualValues(t, 42, v)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Len(t, m.List(), 1)

	_, created := m.GetOrCreate("answer", create)
	assert.False(t, created)
}

func TestMap_ListRange(t *testing.T) {
	m := New[int, string]()
	m.GetOrCreate(1, func() string { return "one" })
	m.GetOrCreate(2, func() string { return "two" })
	assert.ElementsMatch(t, []string{"one", "two"}, m.List())

	var visited int
	m.Range(func(int, string) bool {
		visited++
		return false
	})
	assert.EqualValues(t, 1, visited, "Range stops when fn returns false")
}
