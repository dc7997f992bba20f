package workdir

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wagiedev/langserver-go/internal/config"
	"github.com/wagiedev/langserver-go/internal/errors"
)

func testConfig(name string) config.LaunchConfig {
	return config.NewLaunchConfig(name, []string{"server"})
}

func TestEnsure_CreatesNamespacedDirectory(t *testing.T) {
	base := t.TempDir()
	p := NewProvisioner(slog.Default(), StaticHost(base))

	dir, err := p.Ensure(testConfig("test"))
	require.NoError(t, err)

	require.Equal(t, filepath.Join(base, "LSP", "test"), dir)
	require.True(t, filepath.IsAbs(dir))

	parent, leaf := filepath.Split(dir)
	require.Equal(t, "test", leaf)
	require.Equal(t, "LSP", filepath.Base(parent))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsure_Idempotent(t *testing.T) {
	p := NewProvisioner(slog.Default(), StaticHost(t.TempDir()))

	first, err := p.Ensure(testConfig("gopls"))
	require.NoError(t, err)

	second, err := p.Ensure(testConfig("gopls"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsure_FallsBackToTempDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	for _, host := range []HostEnvironment{nil, NoHost{}, StaticHost("")} {
		p := NewProvisioner(slog.Default(), host)

		if runtime.GOOS != "windows" {
			require.Equal(t, tmp, p.Base())
		}

		dir, err := p.Ensure(testConfig("fallback"))
		require.NoError(t, err)
		require.Equal(t, filepath.Join(os.TempDir(), "LSP", "fallback"), dir)
	}
}

func TestEnsure_RejectsEscapingNames(t *testing.T) {
	p := NewProvisioner(slog.Default(), StaticHost(t.TempDir()))

	for _, name := range []string{"", ".", "..", "../evil", "a/b", `a\b`} {
		_, err := p.Ensure(testConfig(name))

		_, ok := stderrors.AsType[*errors.DirectoryError](err)
		require.True(t, ok, "name %q should fail with DirectoryError, got %v", name, err)
	}
}

func TestEnsure_PropagatesCreationFailure(t *testing.T) {
	base := t.TempDir()

	// A regular file where the namespace directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(base, "LSP"), []byte("x"), 0o600))

	p := NewProvisioner(slog.Default(), StaticHost(base))

	_, err := p.Ensure(testConfig("gopls"))
	require.Error(t, err)

	dirErr, ok := stderrors.AsType[*errors.DirectoryError](err)
	require.True(t, ok)
	require.Equal(t, filepath.Join(base, "LSP", "gopls"), dirErr.Path)
}

func TestUserCacheHost(t *testing.T) {
	dir, ok := UserCacheHost{}.CachePath()
	if !ok {
		t.Skip("no user cache directory on this host")
	}

	require.NotEmpty(t, dir)
}
