package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/wagiedev/langserver-go/cmd/langserver/cmd"
)

// Version information - set at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersion(version, commit, date)

	if err := cmd.Execute(); err != nil {
		if exitErr, ok := errors.AsType[*cmd.ExitCodeError](err); ok {
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
