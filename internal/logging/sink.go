package logging

import "log/slog"

// Sink receives relayed server output. Implementations must be safe for
// concurrent use.
type Sink interface {
	// Debug records a diagnostic message about the relay.
	Debug(msg string)

	// ServerLog records one line written by the server.
	ServerLog(line string)

	// ExceptionLog records a failure together with its cause.
	ExceptionLog(msg string, err error)
}

// SlogSink writes sink events to a slog.Logger.
//
// Debug messages are logged at debug level, server lines at info level with a
// "server" attribute, and exceptions at error level.
type SlogSink struct {
	log *slog.Logger
}

// Compile-time verification that SlogSink implements Sink.
var _ Sink = (*SlogSink)(nil)

// NewSlogSink creates a sink for the named server. A nil logger discards
// everything.
func NewSlogSink(log *slog.Logger, server string) *SlogSink {
	if log == nil {
		log = Nop()
	}

	return &SlogSink{log: log.With("component", "server_log", "server", server)}
}

// Debug implements Sink.
func (s *SlogSink) Debug(msg string) {
	s.log.Debug(msg)
}

// ServerLog implements Sink.
func (s *SlogSink) ServerLog(line string) {
	s.log.Info(line)
}

// ExceptionLog implements Sink.
func (s *SlogSink) ExceptionLog(msg string, err error) {
	s.log.Error(msg, "error", err)
}
