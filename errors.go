package langserver

import "github.com/wagiedev/langserver-go/internal/errors"

// Re-export error types from internal package

// DirectoryError indicates the working directory could not be provisioned.
type DirectoryError = errors.DirectoryError

// LaunchError indicates the OS could not create the server process.
type LaunchError = errors.LaunchError

// StreamIOError indicates a failed read of the server's stderr. It is only
// ever passed to Sink.ExceptionLog.
type StreamIOError = errors.StreamIOError

// LangServerError is the base interface for all errors of this module.
type LangServerError = errors.LangServerError

// Re-export sentinel errors from internal package.
var (
	// ErrEmptyCommand indicates a launch configuration without an executable.
	ErrEmptyCommand = errors.ErrEmptyCommand

	// ErrEmptyName indicates a launch configuration without a name.
	ErrEmptyName = errors.ErrEmptyName

	// ErrInvalidName indicates a name that cannot be used as a directory.
	ErrInvalidName = errors.ErrInvalidName

	// ErrServerNotFound indicates a catalog lookup miss.
	ErrServerNotFound = errors.ErrServerNotFound

	// ErrServerDisabled indicates a disabled catalog entry.
	ErrServerDisabled = errors.ErrServerDisabled

	// ErrProcessExited indicates the server process is no longer running.
	ErrProcessExited = errors.ErrProcessExited
)
