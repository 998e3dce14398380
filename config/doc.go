// Package config defines the YAML configuration model of the singletonctl
// command-line tool together with helpers to load it from any afs supported
// location and to validate it.
package config
