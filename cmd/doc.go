// Package cmd implements all sub-commands that make up the singletonctl
// command-line interface.  Each file in this directory registers a single
// sub-command (demo, stress, inspect).  The plumbing that is shared between
// commands such as configuration loading and table rendering is located in
// shared.go.
package cmd
