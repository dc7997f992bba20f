package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	langserver "github.com/wagiedev/langserver-go"
)

var workdirCmd = &cobra.Command{
	Use:   "workdir <name>",
	Short: "Create and print a server's working directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkdir,
}

func init() {
	rootCmd.AddCommand(workdirCmd)
}

func runWorkdir(cmd *cobra.Command, args []string) error {
	dir, err := langserver.WorkingDirectory(
		langserver.NewLaunchConfig(args[0], nil),
		langserver.WithLogger(logger),
		langserver.WithCacheDir(settings.CacheDir),
	)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), dir)

	return nil
}
