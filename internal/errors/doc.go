// Package errors defines error types for launching and supervising language servers.
//
// Launch-time failures (DirectoryError, LaunchError) are returned synchronously
// to the caller. StreamIOError is only ever reported through a logging sink by
// the stderr relay. All error types support unwrapping and can be checked using
// errors.Is, errors.As, and errors.AsType.
package errors
