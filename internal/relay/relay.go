package relay

import (
	"bufio"
	stderrors "errors"
	"io"
	"io/fs"

	"github.com/wagiedev/langserver-go/internal/errors"
	"github.com/wagiedev/langserver-go/internal/logging"
)

const (
	// readBufferSize is the size of each buffered read.
	readBufferSize = 64 * 1024

	// maxLineSize bounds the memory held for one line. A line longer than
	// this is forwarded in maxLineSize pieces.
	maxLineSize = 10 * 1024 * 1024 // 10MB

	// StoppedMessage is sent to Sink.Debug when the stream ends normally.
	StoppedMessage = "LSP stream logger stopped."

	// FailureMessage accompanies read errors sent to Sink.ExceptionLog.
	FailureMessage = "Failure reading stream"
)

// Liveness reports whether the monitored process is still running.
type Liveness interface {
	Alive() bool
}

// Attach relays stream to sink on a new goroutine and returns immediately.
func Attach(proc Liveness, stream io.Reader, sink logging.Sink) {
	go Run(proc, stream, sink)
}

// Run relays stream to sink on the calling goroutine until the stream ends,
// a read fails, or the line after proc is first seen dead has been read.
func Run(proc Liveness, stream io.Reader, sink logging.Sink) {
	reader := bufio.NewReaderSize(stream, readBufferSize)

	for running := true; running; {
		running = proc.Alive()

		content, err := readLine(reader)
		if len(content) > 0 {
			sink.ServerLog(Decode(content).String())
		}

		if err == nil {
			continue
		}

		if endOfStream(err) {
			break
		}

		sink.ExceptionLog(FailureMessage, &errors.StreamIOError{Err: err})

		return
	}

	sink.Debug(StoppedMessage)
}

// readLine reads through the next newline, the end of the stream, or
// maxLineSize bytes, whichever comes first.
func readLine(reader *bufio.Reader) ([]byte, error) {
	var line []byte

	for {
		chunk, err := reader.ReadSlice('\n')
		line = append(line, chunk...)

		if !stderrors.Is(err, bufio.ErrBufferFull) {
			return line, err
		}

		if len(line) >= maxLineSize {
			return line, nil
		}
	}
}

// endOfStream reports whether err means the stream was closed rather than
// broken. A stream closed by Process.Close reads as fs.ErrClosed.
func endOfStream(err error) bool {
	return stderrors.Is(err, io.EOF) || stderrors.Is(err, fs.ErrClosed)
}
