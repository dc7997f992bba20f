package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoader_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	settings, err := NewLoader().Load()
	require.NoError(t, err)

	require.True(t, settings.LogStderr)
	require.Empty(t, settings.CacheDir)
	require.Equal(t, "servers.yaml", settings.Servers)
	require.Equal(t, "info", settings.Log.Level)
	require.Equal(t, "auto", settings.Log.Format)
}

func TestLoader_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "langserver.yaml")

	content := "log_stderr: false\ncache_dir: /var/cache/editor\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("LANGSERVER_LOG_FORMAT", "json")
	t.Setenv("LANGSERVER_CACHE_DIR", "/from/env")

	loader := NewLoader().WithConfigFile(path)

	settings, err := loader.Load()
	require.NoError(t, err)

	require.False(t, settings.LogStderr)
	require.Equal(t, "/from/env", settings.CacheDir)
	require.Equal(t, "debug", settings.Log.Level)
	require.Equal(t, "json", settings.Log.Format)
	require.Equal(t, path, loader.ConfigFile())
}

func TestLoader_BrokenConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langserver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [\n"), 0o600))

	_, err := NewLoader().WithConfigFile(path).Load()
	require.Error(t, err)
}
