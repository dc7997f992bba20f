package subprocess

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/wagiedev/langserver-go/internal/errors"
)

// Process is a running language server.
type Process struct {
	// ID uniquely identifies this launch in logs.
	ID string

	// Name is the configured server name.
	Name string

	// PID is the OS process identifier.
	PID int

	// Args is the effective argument vector after platform resolution.
	Args []string

	// Dir is the provisioned working directory.
	Dir string

	// Stdin is the server's standard input.
	Stdin io.WriteCloser

	// Stdout is the server's standard output.
	Stdout io.ReadCloser

	// Stderr is the server's standard error, or nil when it was not attached.
	Stderr io.ReadCloser

	log  *slog.Logger
	cmd  *exec.Cmd
	done chan struct{}

	// exitErr is written once before done is closed.
	exitErr  error
	exitCode atomic.Int32

	closeOnce sync.Once
	closeErr  error
}

// Usage is a point-in-time resource snapshot of a running server.
type Usage struct {
	RSS        uint64
	CPUPercent float64
	NumThreads int32
}

func newProcess(log *slog.Logger, id, name string, cmd *exec.Cmd, dir string) *Process {
	p := &Process{
		ID:   id,
		Name: name,
		PID:  cmd.Process.Pid,
		Args: cmd.Args,
		Dir:  dir,
		log:  log,
		cmd:  cmd,
		done: make(chan struct{}),
	}
	p.exitCode.Store(-1)

	go p.wait()

	return p
}

// wait reaps the child. The stdio streams are *os.File pipes owned by the
// Process, so cmd.Wait returns as soon as the child exits and never closes
// them under a reader.
func (p *Process) wait() {
	err := p.cmd.Wait()

	code := -1
	if p.cmd.ProcessState != nil {
		code = p.cmd.ProcessState.ExitCode()
	}

	p.exitErr = err
	p.exitCode.Store(int32(code))

	p.log.Debug("Language server exited", "exit_code", code, "error", err)

	close(p.done)
}

// Alive reports whether the process has not yet exited.
func (p *Process) Alive() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// Done returns a channel that is closed when the process exits.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the process exits and returns its exit error, if any.
// It may be called any number of times from any goroutine.
func (p *Process) Wait() error {
	<-p.done

	return p.exitErr
}

// ExitCode returns the exit code, or -1 while running or when the process was
// terminated by a signal.
func (p *Process) ExitCode() int {
	return int(p.exitCode.Load())
}

// Close kills the process if it is still running and releases the stdio
// streams. It is safe to call Close multiple times.
func (p *Process) Close() error {
	p.closeOnce.Do(func() {
		if p.Alive() {
			p.log.Debug("Killing language server", "pid", p.PID)

			if err := p.cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
				p.closeErr = fmt.Errorf("kill language server (pid %d): %w", p.PID, err)
			}
		}

		closeStream(p.Stdin)
		closeStream(p.Stdout)
		closeStream(p.Stderr)
	})

	return p.closeErr
}

// Usage samples memory, CPU and thread usage of the running process.
func (p *Process) Usage(ctx context.Context) (Usage, error) {
	if !p.Alive() {
		return Usage{}, errors.ErrProcessExited
	}

	//nolint:gosec // G115: OS PIDs fit in int32
	proc, err := process.NewProcessWithContext(ctx, int32(p.PID))
	if err != nil {
		return Usage{}, fmt.Errorf("inspect pid %d: %w", p.PID, err)
	}

	mem, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return Usage{}, fmt.Errorf("memory info: %w", err)
	}

	cpu, err := proc.CPUPercentWithContext(ctx)
	if err != nil {
		return Usage{}, fmt.Errorf("cpu percent: %w", err)
	}

	threads, err := proc.NumThreadsWithContext(ctx)
	if err != nil {
		return Usage{}, fmt.Errorf("thread count: %w", err)
	}

	return Usage{RSS: mem.RSS, CPUPercent: cpu, NumThreads: threads}, nil
}

// closeStream closes c, ignoring errors: the streams may already have been
// closed by their consumer.
func closeStream(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
