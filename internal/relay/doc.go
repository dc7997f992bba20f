// Package relay forwards a language server's stderr to a logging sink.
//
// Attach starts one goroutine per stream and returns immediately; there is no
// handle to join or cancel it. The goroutine reads one line at a time, in
// order, and stops when the stream ends, when a read fails, or one line after
// it observes that the process is no longer alive. Failures are reported to
// the sink and never to the caller.
package relay
