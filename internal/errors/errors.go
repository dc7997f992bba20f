package errors

import (
	"errors"
	"fmt"
	"strings"
)

// LangServerError is the base interface for all errors raised by this module.
type LangServerError interface {
	error
	IsLangServerError() bool
}

// Compile-time verification that all error types implement LangServerError.
var (
	_ LangServerError = (*DirectoryError)(nil)
	_ LangServerError = (*LaunchError)(nil)
	_ LangServerError = (*StreamIOError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrEmptyCommand indicates a launch configuration without an executable.
	ErrEmptyCommand = errors.New("empty command")

	// ErrEmptyName indicates a launch configuration without a name.
	ErrEmptyName = errors.New("empty server name")

	// ErrInvalidName indicates a server name that cannot be used as a directory name.
	ErrInvalidName = errors.New("invalid server name")

	// ErrServerNotFound indicates the server catalog has no entry with the requested name.
	ErrServerNotFound = errors.New("server not found")

	// ErrServerDisabled indicates the catalog entry exists but is disabled.
	ErrServerDisabled = errors.New("server disabled")

	// ErrProcessExited indicates the server process is no longer running.
	ErrProcessExited = errors.New("process exited")
)

// DirectoryError indicates the server working directory could not be provisioned.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("prepare working directory %q: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// IsLangServerError implements LangServerError.
func (e *DirectoryError) IsLangServerError() bool { return true }

// LaunchError indicates the OS could not create the server process.
type LaunchError struct {
	Name string
	Args []string
	Err  error
}

func (e *LaunchError) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("start server %q: %v", e.Name, e.Err)
	}

	return fmt.Sprintf("start server %q (%s): %v", e.Name, strings.Join(e.Args, " "), e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsLangServerError implements LangServerError.
func (e *LaunchError) IsLangServerError() bool { return true }

// StreamIOError indicates reading the server's stderr failed after it was opened.
type StreamIOError struct {
	Err error
}

func (e *StreamIOError) Error() string {
	return fmt.Sprintf("read server stream: %v", e.Err)
}

func (e *StreamIOError) Unwrap() error {
	return e.Err
}

// IsLangServerError implements LangServerError.
func (e *StreamIOError) IsLangServerError() bool { return true }
