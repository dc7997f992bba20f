package langserver

import (
	"log/slog"

	"github.com/wagiedev/langserver-go/internal/command"
	"github.com/wagiedev/langserver-go/internal/logging"
	"github.com/wagiedev/langserver-go/internal/workdir"
)

// Options configures launching and log relaying.
type Options struct {
	// Logger receives launcher diagnostics and, unless Sink is set, relayed
	// server output. If nil, logging is disabled.
	Logger *slog.Logger

	// Sink receives relayed stderr lines. Defaults to a SlogSink over Logger.
	Sink Sink

	// Host supplies the base cache directory. Defaults to the OS temporary
	// directory.
	Host HostEnvironment

	// LogStderr makes Launch pipe stderr and attach the log relay.
	LogStderr bool

	// LookPath overrides the executable search used for Windows extension
	// resolution.
	LookPath command.LookPathFunc
}

// Option configures Options using the functional options pattern.
type Option func(*Options)

func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = NopLogger()
	}

	if options.Host == nil {
		options.Host = workdir.NoHost{}
	}

	return options
}

// sinkFor returns the configured sink or a SlogSink for the named server.
func (o *Options) sinkFor(server string) Sink {
	if o.Sink != nil {
		return o.Sink
	}

	return logging.NewSlogSink(o.Logger, server)
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithSink sets the sink relayed stderr lines are written to.
func WithSink(sink Sink) Option {
	return func(o *Options) {
		o.Sink = sink
	}
}

// WithHost sets the host environment that supplies the cache directory.
func WithHost(host HostEnvironment) Option {
	return func(o *Options) {
		o.Host = host
	}
}

// WithCacheDir uses dir as the base for server working directories.
func WithCacheDir(dir string) Option {
	return func(o *Options) {
		o.Host = workdir.StaticHost(dir)
	}
}

// WithLogStderr controls whether Launch relays the server's stderr.
func WithLogStderr(enabled bool) Option {
	return func(o *Options) {
		o.LogStderr = enabled
	}
}

// WithLookPath replaces the executable search used for extension resolution.
func WithLookPath(lookPath func(file string) (string, error)) Option {
	return func(o *Options) {
		o.LookPath = lookPath
	}
}
