package langserver

import (
	"context"
	"fmt"
)

// WithServer manages a server's lifecycle with automatic cleanup.
//
// It launches the server with Launch, runs fn, and closes the process when fn
// returns. If fn returns an error, it is returned to the caller. A failure to
// close is logged but does not override fn's error.
//
// Example usage:
//
//	err := langserver.WithServer(ctx, cfg, env, func(proc *langserver.Process) error {
//	    client := jsonrpc.NewClient(proc.Stdout, proc.Stdin)
//	    return client.Initialize(ctx)
//	},
//	    langserver.WithLogger(log),
//	    langserver.WithLogStderr(true),
//	)
func WithServer(
	ctx context.Context,
	cfg LaunchConfig,
	env map[string]string,
	fn func(*Process) error,
	opts ...Option,
) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := applyOptions(opts)

	proc, err := Launch(ctx, cfg, env, opts...)
	if err != nil {
		return fmt.Errorf("failed to launch server: %w", err)
	}

	defer func() {
		if closeErr := proc.Close(); closeErr != nil {
			options.Logger.Warn("failed to close server", "server", proc.Name, "error", closeErr)
		}
	}()

	return fn(proc)
}
