package subprocess

import (
	"fmt"
	"os"
)

// pipeSet holds both ends of the server's stdio pipes.
//
// The parent ends stay with the Process; the child ends are handed to the OS
// and must be closed in the parent once Start returns, whether it succeeded or
// not, so that EOF propagates when the child exits.
type pipeSet struct {
	stdinR, stdinW   *os.File
	stdoutR, stdoutW *os.File
	stderrR, stderrW *os.File
}

func newPipeSet(attachStderr bool) (*pipeSet, error) {
	p := &pipeSet{}

	var err error

	if p.stdinR, p.stdinW, err = os.Pipe(); err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}

	if p.stdoutR, p.stdoutW, err = os.Pipe(); err != nil {
		p.closeAll()

		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	if attachStderr {
		if p.stderrR, p.stderrW, err = os.Pipe(); err != nil {
			p.closeAll()

			return nil, fmt.Errorf("stderr pipe: %w", err)
		}
	}

	return p, nil
}

// closeChildEnds closes the ends inherited by the child.
func (p *pipeSet) closeChildEnds() {
	closeFile(p.stdinR)
	closeFile(p.stdoutW)
	closeFile(p.stderrW)
}

// closeParentEnds closes the ends the Process would have owned.
func (p *pipeSet) closeParentEnds() {
	closeFile(p.stdinW)
	closeFile(p.stdoutR)
	closeFile(p.stderrR)
}

func (p *pipeSet) closeAll() {
	p.closeChildEnds()
	p.closeParentEnds()
}

func closeFile(f *os.File) {
	if f != nil {
		_ = f.Close()
	}
}
