// Package config provides configuration types for launching language servers.
package config

import (
	"slices"

	"github.com/wagiedev/langserver-go/internal/errors"
)

// LaunchConfig describes how to start one language server.
//
// LaunchConfig is an immutable value: the argument vector is copied on the way
// in and on the way out, so callers can never mutate a config they handed over.
type LaunchConfig struct {
	name       string
	binaryArgs []string
}

// NewLaunchConfig creates a LaunchConfig. The first element of binaryArgs is
// the executable.
func NewLaunchConfig(name string, binaryArgs []string) LaunchConfig {
	return LaunchConfig{
		name:       name,
		binaryArgs: slices.Clone(binaryArgs),
	}
}

// Name returns the server identifier. It also keys the working directory.
func (c LaunchConfig) Name() string {
	return c.name
}

// BinaryArgs returns a copy of the argument vector.
func (c LaunchConfig) BinaryArgs() []string {
	return slices.Clone(c.binaryArgs)
}

// Executable returns the first argument, or "" when the vector is empty.
func (c LaunchConfig) Executable() string {
	if len(c.binaryArgs) == 0 {
		return ""
	}

	return c.binaryArgs[0]
}

// Validate reports whether the config can be launched.
func (c LaunchConfig) Validate() error {
	if c.name == "" {
		return errors.ErrEmptyName
	}

	if len(c.binaryArgs) == 0 || c.binaryArgs[0] == "" {
		return errors.ErrEmptyCommand
	}

	return nil
}
