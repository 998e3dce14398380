// Package transport is an example consumer of the singleton primitive: a
// Transport hides its implementation behind a factory and reports a failure
// description when it cannot be opened, which makes it a result bearing
// singleton with a string result.
package transport
