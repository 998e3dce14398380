// Package syncmap offers a lightweight, generic, concurrency-safe map guarded
// by a sync.RWMutex.  GetOrCreate is what the process-wide singleton registry
// relies on to bind exactly one wrapper per key; List and Range let it walk
// the registered entries.
package syncmap
