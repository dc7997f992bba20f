package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	langserver "github.com/wagiedev/langserver-go"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List servers in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	catalog, err := langserver.LoadCatalog(settings.Servers)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tENABLED\tCOMMAND")

	for _, server := range catalog.Servers {
		fmt.Fprintf(w, "%s\t%t\t%s\n", server.Name, server.IsEnabled(), strings.Join(server.Command, " "))
	}

	return w.Flush()
}
