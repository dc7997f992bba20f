package cmd

import (
	"sync"
	"time"

	langserver "github.com/wagiedev/langserver-go"
)

// relayDrainTimeout bounds how long run waits for buffered stderr after the
// server has exited.
const relayDrainTimeout = 2 * time.Second

// stopSignalSink forwards to the wrapped sink and reports when the relay has
// stopped. The relay only calls Debug for its stop message and ExceptionLog
// for a failed read, after which it returns.
type stopSignalSink struct {
	langserver.Sink

	stopped chan struct{}
	once    sync.Once
}

func newStopSignalSink(next langserver.Sink) *stopSignalSink {
	return &stopSignalSink{Sink: next, stopped: make(chan struct{})}
}

func (s *stopSignalSink) Debug(msg string) {
	s.Sink.Debug(msg)
	s.once.Do(func() { close(s.stopped) })
}

func (s *stopSignalSink) ExceptionLog(msg string, err error) {
	s.Sink.ExceptionLog(msg, err)
	s.once.Do(func() { close(s.stopped) })
}

// wait blocks until the relay stops or timeout elapses and reports whether
// it stopped.
func (s *stopSignalSink) wait(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-s.stopped:
		return true
	case <-timer.C:
		return false
	}
}
