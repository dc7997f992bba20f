package subprocess

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/langserver-go/internal/command"
	"github.com/wagiedev/langserver-go/internal/config"
	"github.com/wagiedev/langserver-go/internal/errors"
	"github.com/wagiedev/langserver-go/internal/platform"
	"github.com/wagiedev/langserver-go/internal/workdir"
)

// Launcher starts language server processes.
type Launcher struct {
	log          *slog.Logger
	provisioner  *workdir.Provisioner
	lookPath     command.LookPathFunc
	capabilities func() platform.Capabilities
}

// NewLauncher creates a launcher that provisions working directories with
// provisioner.
func NewLauncher(log *slog.Logger, provisioner *workdir.Provisioner) *Launcher {
	return &Launcher{
		log:          log.With("component", "launcher"),
		provisioner:  provisioner,
		lookPath:     exec.LookPath,
		capabilities: platform.Current,
	}
}

// WithLookPath replaces the executable search used for extension resolution.
// A nil function restores exec.LookPath.
func (l *Launcher) WithLookPath(lookPath command.LookPathFunc) *Launcher {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	l.lookPath = lookPath

	return l
}

// Start launches the server described by cfg.
//
// env replaces the inherited environment entirely. Standard input and output
// are always piped; standard error is piped when attachStderr is true and sent
// to the null device otherwise.
//
// ctx only bounds the launch itself: the server keeps running after ctx is
// done and is stopped with Process.Close.
//
// Returns a DirectoryError when the working directory cannot be created and a
// LaunchError when the OS cannot create the process. No Process is returned on
// failure.
func (l *Launcher) Start(
	ctx context.Context,
	cfg config.LaunchConfig,
	env map[string]string,
	attachStderr bool,
) (*Process, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &errors.LaunchError{Name: cfg.Name(), Args: cfg.BinaryArgs(), Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, &errors.LaunchError{Name: cfg.Name(), Args: cfg.BinaryArgs(), Err: err}
	}

	caps := l.capabilities()

	args := cfg.BinaryArgs()
	if caps.ResolveExtensions {
		args = command.ResolveExtension(args, l.lookPath)
	}

	cwd, err := l.provisioner.Ensure(cfg)
	if err != nil {
		return nil, err
	}

	id := ulid.Make().String()
	log := l.log.With("server", cfg.Name(), "launch_id", id)

	log.Debug("Starting language server", "args", strings.Join(args, " "), "cwd", cwd)

	pipes, err := newPipeSet(attachStderr)
	if err != nil {
		log.Error("Failed to create pipes", "error", err)

		return nil, &errors.LaunchError{Name: cfg.Name(), Args: args, Err: err}
	}

	//nolint:gosec // G204: launching a configured server command is the point
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = cwd
	cmd.Env = command.BuildEnvironment(env)
	cmd.Stdin = pipes.stdinR
	cmd.Stdout = pipes.stdoutW

	if attachStderr {
		cmd.Stderr = pipes.stderrW
	}

	platform.Apply(cmd, caps)

	err = cmd.Start()

	pipes.closeChildEnds()

	if err != nil {
		pipes.closeParentEnds()
		log.Error("Failed to start language server", "error", err)

		return nil, &errors.LaunchError{Name: cfg.Name(), Args: args, Err: err}
	}

	proc := newProcess(log, id, cfg.Name(), cmd, cwd)
	proc.Stdin = pipes.stdinW
	proc.Stdout = pipes.stdoutR

	if attachStderr {
		proc.Stderr = pipes.stderrR
	}

	log.Info("Language server started", "pid", proc.PID)

	return proc, nil
}
