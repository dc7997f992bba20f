// Package logging provides the sink server stderr is relayed to and the
// construction of the host's slog logger.
//
// A Sink receives three kinds of events: debug messages about the relay
// itself, one call per line the server wrote, and failures. SlogSink maps them
// onto a *slog.Logger and is safe for concurrent use, so several relays can
// share one sink.
package logging
