package langserver

import (
	"log/slog"

	"github.com/wagiedev/langserver-go/internal/config"
	"github.com/wagiedev/langserver-go/internal/logging"
	"github.com/wagiedev/langserver-go/internal/subprocess"
	"github.com/wagiedev/langserver-go/internal/workdir"
)

// LaunchConfig describes how to start one language server.
type LaunchConfig = config.LaunchConfig

// ServerConfig is one entry of a server catalog.
type ServerConfig = config.ServerConfig

// Catalog is a set of named server definitions loaded from YAML.
type Catalog = config.Catalog

// Process is a running language server with piped standard I/O.
type Process = subprocess.Process

// Usage is a resource snapshot of a running server.
type Usage = subprocess.Usage

// Sink receives relayed server output.
type Sink = logging.Sink

// SlogSink is a Sink backed by a *slog.Logger.
type SlogSink = logging.SlogSink

// HostEnvironment supplies the host's cache directory.
type HostEnvironment = workdir.HostEnvironment

// StaticHost is a HostEnvironment with a fixed cache directory.
type StaticHost = workdir.StaticHost

// UserCacheHost uses the per-user cache directory.
type UserCacheHost = workdir.UserCacheHost

// NewSlogSink creates a Sink that logs the named server's output.
func NewSlogSink(log *slog.Logger, server string) *SlogSink {
	return logging.NewSlogSink(log, server)
}
