// Package logging configures the zerolog logger shared by the singleton CLI
// and its tests.  A profile picks the defaults and environment variables can
// override the level and colouring.
package logging
