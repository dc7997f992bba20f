package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wagiedev/langserver-go/internal/config"
	"github.com/wagiedev/langserver-go/internal/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	v        = viper.New()
	settings *config.Settings
	logger   = logging.Nop()

	// Version info - set via SetVersion()
	appVersion string
	appCommit  string
	appDate    string
)

var rootCmd = &cobra.Command{
	Use:   "langserver",
	Short: "Launch and supervise stdio language servers",
	Long: `langserver starts language servers described in a YAML catalog, runs each
in its own working directory under the cache, and relays their stderr into
structured logs.

'langserver run <name>' acts as a transparent stdio shim an editor can spawn
in place of the server itself.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initConfig(cmd)
	},
}

// ExitCodeError carries a server's exit code back to main.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("language server exited with code %d", e.Code)
}

func Execute() error {
	return rootCmd.Execute()
}

func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./langserver.yaml or ~/.config/langserver/langserver.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto",
		"log format (auto, text, json)")
	rootCmd.PersistentFlags().String("servers", "",
		"server catalog file (default: servers.yaml)")
	rootCmd.PersistentFlags().String("cache-dir", "",
		"base directory for server working directories (default: OS temp dir)")

	// Bind flags to viper (errors are nil when flag exists)
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag("servers", rootCmd.PersistentFlags().Lookup("servers"))
	_ = v.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
}

func initConfig(cmd *cobra.Command) error {
	loaded, err := config.NewLoaderWithViper(v).WithConfigFile(cfgFile).Load()
	if err != nil {
		return err
	}

	settings = loaded
	logger = logging.New(logging.Config{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("Loaded config", slog.String("file", used))
	}

	return nil
}
