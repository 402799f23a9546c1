package driver

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// CommandReader reads one line of user input at a time. Lines come back
// with surrounding whitespace trimmed; a blank line is a meaningful result,
// not something to skip.
type CommandReader interface {
	ReadCommand() (string, error)
	Close() error
}

// DirectCommandReader reads lines from any generic input stream directly.
// It does not sanitize the input of control and escape sequences.
type DirectCommandReader struct {
	r *bufio.Reader
}

// InteractiveCommandReader reads lines from stdin using a Go implementation
// of the GNU Readline library, which keeps input clear of typing and
// editing escape sequences. It should only be used when connected to a TTY.
type InteractiveCommandReader struct {
	rl *readline.Instance
}

// NewDirectReader initializes a DirectCommandReader on r. Passing a reader
// that is already buffered avoids losing read-ahead data.
func NewDirectReader(r io.Reader) *DirectCommandReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &DirectCommandReader{r: br}
	}
	return &DirectCommandReader{r: bufio.NewReader(r)}
}

// NewInteractiveReader initializes readline on stdin. The returned reader
// must have Close called on it to tear readline down again.
func NewInteractiveReader() (*InteractiveCommandReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "",
	})
	if err != nil {
		return nil, err
	}

	return &InteractiveCommandReader{
		rl: rl,
	}, nil
}

func (dcr *DirectCommandReader) Close() error {
	return nil
}

func (icr *InteractiveCommandReader) Close() error {
	return icr.rl.Close()
}

// ReadCommand reads the next line. At the end of input it returns io.EOF;
// a final line without a trailing newline still counts.
func (dcr *DirectCommandReader) ReadCommand() (string, error) {
	line, err := dcr.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadCommand reads the next line through readline. Interrupt and EOF both
// surface as io.EOF so the caller can treat them as a terminator.
func (icr *InteractiveCommandReader) ReadCommand() (string, error) {
	line, err := icr.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
