// Package langserver launches and supervises language servers that speak over
// standard input and output, and relays their stderr to a logging sink.
//
// The package owns exactly one concern: getting a server process running with
// the right command line, environment and working directory, and keeping its
// diagnostic output flowing into your logs without ever blocking you. The
// protocol spoken over stdin/stdout belongs to a separate client.
//
// # Basic Usage
//
// Launch starts a server and, when stderr logging is enabled, attaches the
// log relay in one call:
//
//	cfg := langserver.NewLaunchConfig("gopls", []string{"gopls", "serve"})
//
//	proc, err := langserver.Launch(ctx, cfg, langserver.CurrentEnvironment(),
//	    langserver.WithLogger(slog.Default()),
//	    langserver.WithLogStderr(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer proc.Close()
//
//	// proc.Stdin and proc.Stdout now belong to your protocol client.
//
// # Lower-Level Control
//
// StartServer and AttachLogger are the two halves of Launch:
//
//	proc, err := langserver.StartServer(ctx, cfg, env, true)
//	if err != nil {
//	    return err
//	}
//	langserver.AttachLogger(proc, proc.Stderr, langserver.WithSink(mySink))
//
// AttachLogger returns immediately. The relay stops on its own when the stream
// closes, a read fails, or the server exits.
//
// # Working Directory
//
// Each server runs in <cache>/LSP/<name>, created on demand. The cache
// directory comes from WithHost or WithCacheDir and defaults to the OS
// temporary directory.
//
// # Windows
//
// Servers installed as ".cmd" or ".bat" wrappers are found without spelling
// out the extension, and no console window is shown.
//
// # Error Handling
//
// Launch failures are typed:
//
//	proc, err := langserver.StartServer(ctx, cfg, env, false)
//	if err != nil {
//	    if dirErr, ok := errors.AsType[*langserver.DirectoryError](err); ok {
//	        log.Fatalf("cannot prepare %s: %v", dirErr.Path, dirErr.Err)
//	    }
//	    if launchErr, ok := errors.AsType[*langserver.LaunchError](err); ok {
//	        log.Fatalf("cannot start %s: %v", launchErr.Name, launchErr.Err)
//	    }
//	    log.Fatal(err)
//	}
//
// Relay failures are never returned; they reach the sink's ExceptionLog.
package langserver
