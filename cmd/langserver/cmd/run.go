package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	langserver "github.com/wagiedev/langserver-go"
)

var runStatsInterval time.Duration

var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run a catalog server as a stdio shim",
	Long: `Run launches the named server from the catalog and bridges this process's
standard input and output to the server's. Server stderr is relayed to the log
when log_stderr is enabled. The exit code is the server's exit code.`,
	Args: cobra.ExactArgs(1),
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("log-stderr", true, "relay server stderr to the log")
	runCmd.Flags().DurationVar(&runStatsInterval, "stats-interval", 0,
		"log server resource usage at this interval (0 disables)")

	_ = v.BindPFlag("log_stderr", runCmd.Flags().Lookup("log-stderr"))
}

func runServer(cmd *cobra.Command, args []string) error {
	catalog, err := langserver.LoadCatalog(settings.Servers)
	if err != nil {
		return err
	}

	entry, err := catalog.Lookup(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := newStopSignalSink(langserver.NewSlogSink(logger, entry.Name))

	proc, err := langserver.Launch(ctx,
		entry.LaunchConfig(),
		entry.Environment(langserver.CurrentEnvironment()),
		langserver.WithLogger(logger),
		langserver.WithCacheDir(settings.CacheDir),
		langserver.WithLogStderr(settings.LogStderr),
		langserver.WithSink(sink),
	)
	if err != nil {
		return err
	}
	defer closeServer(proc, sink)

	if err := bridge(ctx, proc, cmd.InOrStdin(), cmd.OutOrStdout(), runStatsInterval); err != nil {
		return err
	}

	if ctx.Err() != nil {
		return nil
	}

	if code := proc.ExitCode(); code != 0 {
		return &ExitCodeError{Code: exitStatus(code)}
	}

	return nil
}

// closeServer lets the relay log whatever the exited server left in its
// stderr pipe, then releases the process. A running server is killed at once.
func closeServer(proc *langserver.Process, sink *stopSignalSink) {
	if proc.Stderr != nil && !proc.Alive() && !sink.wait(relayDrainTimeout) {
		logger.Warn("Stderr relay did not finish, closing", "server", proc.Name, "launch_id", proc.ID)
	}

	if err := proc.Close(); err != nil {
		logger.Warn("Failed to close language server", "server", proc.Name, "error", err)
	}
}

// exitStatus maps a server exit code to this process's exit status. A server
// terminated by a signal reports -1, which becomes 1.
func exitStatus(code int) int {
	if code < 0 {
		return 1
	}

	return code
}

// bridge copies in to the server's stdin and the server's stdout to out until
// the server exits or ctx is cancelled, in which case the server is killed.
func bridge(ctx context.Context, proc *langserver.Process, in io.Reader, out io.Writer, statsInterval time.Duration) error {
	log := logger.With("server", proc.Name, "launch_id", proc.ID)

	// Reading from in may block forever, so this copy is not joined.
	go func() {
		if _, err := io.Copy(proc.Stdin, in); err != nil && !closedPipe(err) {
			log.Warn("Copying to server stdin failed", "error", err)
		}

		_ = proc.Stdin.Close()
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := io.Copy(out, proc.Stdout); err != nil && !closedPipe(err) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		select {
		case <-proc.Done():
			return nil
		case <-gctx.Done():
			log.Info("Stopping language server")

			if err := proc.Close(); err != nil {
				return err
			}

			return ctx.Err()
		}
	})

	if statsInterval > 0 {
		g.Go(func() error {
			reportUsage(gctx, proc, statsInterval)

			return nil
		})
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func reportUsage(ctx context.Context, proc *langserver.Process, interval time.Duration) {
	log := logger.With("server", proc.Name, "launch_id", proc.ID)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-proc.Done():
			return
		case <-ticker.C:
			usage, err := proc.Usage(ctx)
			if err != nil {
				log.Debug("Usage sample failed", "error", err)

				continue
			}

			log.Info("Language server usage",
				"rss_bytes", usage.RSS,
				"cpu_percent", usage.CPUPercent,
				"threads", usage.NumThreads,
			)
		}
	}
}

func closedPipe(err error) bool {
	return errors.Is(err, fs.ErrClosed) || errors.Is(err, syscall.EPIPE)
}
