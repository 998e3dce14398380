// Package singleton turns any type into a lazily constructed, process-wide
// shared instance without the type implementing any synchronization itself.
//
// A wrapper owns a slot holding a weak reference to the current instance and
// a gate serializing first construction. Callers receive reference-counted
// Handles; the instance is destroyed when the last Handle is released, unless
// the wrapper was built WithKeepAlive, in which case it lives until the
// process exits.
//
// Types may opt into post-construction validation by implementing Checkable
// (InstanceOK) and optionally ResultBearing (InstanceResultValue). The binder
// picks the dispatch once:
//
//	New            - no validation, Acquire returns a *Handle
//	NewChecked     - Acquire returns (*Handle, error); the error carries no payload
//	NewWithResult  - Acquire returns (*Handle, error); the error carries the reported value
//
// An instance that fails validation is discarded and never published, so the
// next caller constructs again.
//
// When concurrent first callers pass different constructor arguments, the
// caller that wins the gate decides which arguments are used; the others get
// a Handle to that instance. A wrapper is not a factory.
//
// Calling Acquire for the same wrapper from inside the constructor deadlocks.
package singleton
