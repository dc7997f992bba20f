package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultEnvPrefix is the environment variable prefix for settings.
const DefaultEnvPrefix = "LANGSERVER"

// Settings holds host-level settings shared by every launched server.
type Settings struct {
	// LogStderr pipes each server's stderr into the log relay.
	// When false, stderr goes to the null device.
	LogStderr bool `mapstructure:"log_stderr"`

	// CacheDir overrides the base directory for server working directories.
	// Empty means the OS temporary directory.
	CacheDir string `mapstructure:"cache_dir"`

	// Servers is the path of the server catalog file.
	Servers string `mapstructure:"servers"`

	Log LogSettings `mapstructure:"log"`
}

// LogSettings configures the host logger.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Loader loads Settings from defaults, a config file, environment variables
// and bound flags. Precedence (highest first): flags, LANGSERVER_* variables,
// config file, defaults.
type Loader struct {
	v          *viper.Viper
	configFile string
	envPrefix  string
}

// NewLoader creates a loader with a private viper instance.
func NewLoader() *Loader {
	return NewLoaderWithViper(viper.New())
}

// NewLoaderWithViper creates a loader using an existing viper instance,
// typically one with CLI flags already bound.
func NewLoaderWithViper(v *viper.Viper) *Loader {
	return &Loader{
		v:         v,
		envPrefix: DefaultEnvPrefix,
	}
}

// WithConfigFile sets an explicit config file path.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path

	return l
}

// WithEnvPrefix sets the environment variable prefix.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix

	return l
}

// Viper returns the underlying viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load resolves the settings from every source.
func (l *Loader) Load() (*Settings, error) {
	l.setDefaults()

	l.v.SetEnvPrefix(l.envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName("langserver")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(home, ".config", "langserver"))
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var settings Settings
	if err := l.v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &settings, nil
}

// ConfigFile returns the config file path if one was used.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) setDefaults() {
	l.v.SetDefault("log_stderr", true)
	l.v.SetDefault("cache_dir", "")
	l.v.SetDefault("servers", "servers.yaml")
	l.v.SetDefault("log.level", "info")
	l.v.SetDefault("log.format", "auto")
}
