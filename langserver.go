package langserver

import (
	"context"
	"io"

	"github.com/wagiedev/langserver-go/internal/command"
	"github.com/wagiedev/langserver-go/internal/config"
	"github.com/wagiedev/langserver-go/internal/relay"
	"github.com/wagiedev/langserver-go/internal/subprocess"
	"github.com/wagiedev/langserver-go/internal/workdir"
)

// NewLaunchConfig creates an immutable launch configuration. The first element
// of binaryArgs is the executable.
func NewLaunchConfig(name string, binaryArgs []string) LaunchConfig {
	return config.NewLaunchConfig(name, binaryArgs)
}

// LoadCatalog reads and validates a YAML server catalog.
func LoadCatalog(path string) (*Catalog, error) {
	return config.LoadCatalog(path)
}

// CurrentEnvironment returns this process's environment as a map, ready to be
// extended and passed to StartServer.
func CurrentEnvironment() map[string]string {
	return command.CurrentEnvironment()
}

// StartServer launches the server described by cfg and returns once the OS
// has created the process.
//
// env replaces the inherited environment. Standard input and output are
// always piped; standard error is piped when attachStderr is true and
// discarded otherwise.
//
// Returns a DirectoryError if the working directory cannot be created and a
// LaunchError if the process cannot be started.
func StartServer(
	ctx context.Context,
	cfg LaunchConfig,
	env map[string]string,
	attachStderr bool,
	opts ...Option,
) (*Process, error) {
	options := applyOptions(opts)

	return newLauncher(options).Start(ctx, cfg, env, attachStderr)
}

// AttachLogger relays stream, normally proc.Stderr, to the configured sink on
// a background goroutine and returns immediately. A nil stream is ignored.
func AttachLogger(proc *Process, stream io.Reader, opts ...Option) {
	if proc == nil || stream == nil {
		return
	}

	options := applyOptions(opts)
	relay.Attach(proc, stream, options.sinkFor(proc.Name))
}

// Launch starts the server and, when WithLogStderr(true) is given, attaches
// the log relay to its stderr.
func Launch(ctx context.Context, cfg LaunchConfig, env map[string]string, opts ...Option) (*Process, error) {
	options := applyOptions(opts)

	proc, err := newLauncher(options).Start(ctx, cfg, env, options.LogStderr)
	if err != nil {
		return nil, err
	}

	if proc.Stderr != nil {
		relay.Attach(proc, proc.Stderr, options.sinkFor(proc.Name))
	}

	return proc, nil
}

// WorkingDirectory ensures and returns the working directory cfg would be
// launched in.
func WorkingDirectory(cfg LaunchConfig, opts ...Option) (string, error) {
	options := applyOptions(opts)

	return workdir.NewProvisioner(options.Logger, options.Host).Ensure(cfg)
}

func newLauncher(options *Options) *subprocess.Launcher {
	provisioner := workdir.NewProvisioner(options.Logger, options.Host)

	return subprocess.NewLauncher(options.Logger, provisioner).WithLookPath(options.LookPath)
}
