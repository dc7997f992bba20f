//go:build !windows

package langserver_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	langserver "github.com/wagiedev/langserver-go"
)

type recordingSink struct {
	mu         sync.Mutex
	lines      []string
	debugs     []string
	exceptions []error
}

func (s *recordingSink) Debug(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debugs = append(s.debugs, msg)
}

func (s *recordingSink) ServerLog(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, line)
}

func (s *recordingSink) ExceptionLog(_ string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exceptions = append(s.exceptions, err)
}

func (s *recordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.lines...)
}

func (s *recordingSink) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.debugs) > 0
}

func shellConfig(name, script string) langserver.LaunchConfig {
	return langserver.NewLaunchConfig(name, []string{"/bin/sh", "-c", script})
}

func pathEnv() map[string]string {
	return map[string]string{"PATH": os.Getenv("PATH")}
}

func TestLaunch_RelaysStderrUntilExit(t *testing.T) {
	cache := t.TempDir()
	sink := &recordingSink{}

	proc, err := langserver.Launch(context.Background(),
		shellConfig("echo-server", `echo "ready to serve  " >&2`),
		pathEnv(),
		langserver.WithCacheDir(cache),
		langserver.WithLogStderr(true),
		langserver.WithSink(sink),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = proc.Close() })

	require.Eventually(t, sink.Stopped, 5*time.Second, 10*time.Millisecond)
	require.Equal(t, []string{"ready to serve"}, sink.Lines())
	require.Equal(t, filepath.Join(cache, "LSP", "echo-server"), proc.Dir)
}

func TestLaunch_WithoutLogStderr(t *testing.T) {
	sink := &recordingSink{}

	proc, err := langserver.Launch(context.Background(),
		shellConfig("quiet", `echo noise >&2; exec sleep 60`),
		pathEnv(),
		langserver.WithCacheDir(t.TempDir()),
		langserver.WithSink(sink),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = proc.Close() })

	require.Nil(t, proc.Stderr)
	require.True(t, proc.Alive())
	require.Empty(t, sink.Lines())
}

func TestStartServer_StdioRoundTrip(t *testing.T) {
	proc, err := langserver.StartServer(context.Background(),
		langserver.NewLaunchConfig("cat", []string{"cat"}),
		pathEnv(),
		false,
		langserver.WithCacheDir(t.TempDir()),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = proc.Close() })

	_, err = io.WriteString(proc.Stdin, "Content-Length: 2\r\n\r\n{}")
	require.NoError(t, err)
	require.NoError(t, proc.Stdin.Close())

	out, err := io.ReadAll(proc.Stdout)
	require.NoError(t, err)
	require.Equal(t, "Content-Length: 2\r\n\r\n{}", string(out))

	require.NoError(t, proc.Wait())
	require.Equal(t, 0, proc.ExitCode())
}

func TestStartServer_EnvironmentReplacesInherited(t *testing.T) {
	t.Setenv("LANGSERVER_LEAK", "inherited")

	env := pathEnv()
	env["SERVER_MODE"] = "strict"

	proc, err := langserver.StartServer(context.Background(),
		shellConfig("env", `echo "$SERVER_MODE:$LANGSERVER_LEAK"`),
		env,
		false,
		langserver.WithCacheDir(t.TempDir()),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = proc.Close() })

	out, err := io.ReadAll(proc.Stdout)
	require.NoError(t, err)
	require.Equal(t, "strict:", strings.TrimSpace(string(out)))
}

func TestStartServer_MissingExecutable(t *testing.T) {
	proc, err := langserver.StartServer(context.Background(),
		langserver.NewLaunchConfig("ghost", []string{"/nonexistent/ghost-ls"}),
		pathEnv(),
		true,
		langserver.WithCacheDir(t.TempDir()),
	)
	require.Nil(t, proc)
	require.Error(t, err)

	launchErr, ok := errors.AsType[*langserver.LaunchError](err)
	require.True(t, ok)
	require.Equal(t, "ghost", launchErr.Name)

	_, isDirErr := errors.AsType[*langserver.DirectoryError](err)
	require.False(t, isDirErr)
}

func TestStartServer_DirectoryFailure(t *testing.T) {
	// A regular file where the cache directory should be.
	blocker := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	proc, err := langserver.StartServer(context.Background(),
		shellConfig("blocked", "true"),
		pathEnv(),
		false,
		langserver.WithCacheDir(blocker),
	)
	require.Nil(t, proc)

	dirErr, ok := errors.AsType[*langserver.DirectoryError](err)
	require.True(t, ok)
	require.Equal(t, filepath.Join(blocker, "LSP", "blocked"), dirErr.Path)
}

func TestStartServer_EmptyCommand(t *testing.T) {
	proc, err := langserver.StartServer(context.Background(),
		langserver.NewLaunchConfig("empty", nil),
		pathEnv(),
		false,
		langserver.WithCacheDir(t.TempDir()),
	)
	require.Nil(t, proc)
	require.ErrorIs(t, err, langserver.ErrEmptyCommand)
}

func TestAttachLogger_NilStreamIsIgnored(t *testing.T) {
	proc, err := langserver.StartServer(context.Background(),
		shellConfig("no-stderr", "exec sleep 60"),
		pathEnv(),
		false,
		langserver.WithCacheDir(t.TempDir()),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = proc.Close() })

	sink := &recordingSink{}
	langserver.AttachLogger(proc, proc.Stderr, langserver.WithSink(sink))
	langserver.AttachLogger(nil, strings.NewReader("x\n"), langserver.WithSink(sink))

	require.Empty(t, sink.Lines())
	require.False(t, sink.Stopped())
}

func TestAttachLogger_ReturnsWhileServerRuns(t *testing.T) {
	proc, err := langserver.StartServer(context.Background(),
		shellConfig("chatty", `echo one >&2; echo two >&2; exec sleep 60`),
		pathEnv(),
		true,
		langserver.WithCacheDir(t.TempDir()),
	)
	require.NoError(t, err)

	sink := &recordingSink{}
	langserver.AttachLogger(proc, proc.Stderr, langserver.WithSink(sink))

	require.Eventually(t, func() bool {
		return len(sink.Lines()) == 2
	}, 5*time.Second, 10*time.Millisecond)
	require.Equal(t, []string{"one", "two"}, sink.Lines())

	require.NoError(t, proc.Close())
	require.Eventually(t, sink.Stopped, 5*time.Second, 10*time.Millisecond)
}

func TestWorkingDirectory(t *testing.T) {
	cache := t.TempDir()

	dir, err := langserver.WorkingDirectory(
		langserver.NewLaunchConfig("pyright", []string{"pyright-langserver", "--stdio"}),
		langserver.WithCacheDir(cache),
	)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cache, "LSP", "pyright"), dir)
	require.DirExists(t, dir)
}

func TestWithServer_ClosesAfterCallback(t *testing.T) {
	var captured *langserver.Process

	err := langserver.WithServer(context.Background(),
		shellConfig("scoped", "exec sleep 60"),
		pathEnv(),
		func(proc *langserver.Process) error {
			captured = proc

			require.True(t, proc.Alive())

			return nil
		},
		langserver.WithCacheDir(t.TempDir()),
	)
	require.NoError(t, err)
	require.NotNil(t, captured)

	select {
	case <-captured.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("server still running after WithServer returned")
	}
}

func TestWithServer_CallbackError(t *testing.T) {
	sentinel := errors.New("handshake failed")

	err := langserver.WithServer(context.Background(),
		shellConfig("failing", "exec sleep 60"),
		pathEnv(),
		func(*langserver.Process) error { return sentinel },
		langserver.WithCacheDir(t.TempDir()),
	)
	require.ErrorIs(t, err, sentinel)
}

func TestWithServer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := langserver.WithServer(ctx,
		shellConfig("never", "true"),
		pathEnv(),
		func(*langserver.Process) error {
			t.Error("callback should not be called with cancelled context")

			return nil
		},
	)
	require.ErrorIs(t, err, context.Canceled)
}
