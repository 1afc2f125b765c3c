package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/interfaces"
	"github.com/taskflow/memberctl/pkg/domain/model"
	xterm "golang.org/x/term"
)

// Prompter asks yes/no questions on a terminal
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	assumeYes   bool
	interactive bool

	// one reader goroutine owns in for the prompter's lifetime
	readOnce sync.Once
	lines    chan line
}

type line struct {
	text string
	err  error
}

var _ interfaces.Prompter = (*Prompter)(nil)

// PrompterOption configures a Prompter
type PrompterOption func(*Prompter)

// WithAssumeYes answers every question with yes without asking
func WithAssumeYes(yes bool) PrompterOption {
	return func(p *Prompter) {
		p.assumeYes = yes
	}
}

// WithIO replaces the input and output. The input is treated as
// interactive.
func WithIO(in io.Reader, out io.Writer) PrompterOption {
	return func(p *Prompter) {
		p.in = bufio.NewReader(in)
		p.out = out
		p.interactive = true
	}
}

// NewPrompter creates a prompter on stdin and stderr
func NewPrompter(opts ...PrompterOption) *Prompter {
	p := &Prompter{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stderr,
		interactive: xterm.IsTerminal(int(os.Stdin.Fd())),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Confirm asks message and reports whether the user answered yes
func (p *Prompter) Confirm(ctx context.Context, message string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}
	if !p.interactive {
		return false, goerr.New("confirmation required, rerun with --yes",
			goerr.V("question", message),
			goerr.T(model.ErrTagMissingInput),
		)
	}

	fmt.Fprintf(p.out, "%s [y/N]: ", message)
	answer, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// readLine waits for the next line of input. A line that arrives after
// ctx is done is kept for the next call.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	p.readOnce.Do(func() {
		p.lines = make(chan line, 1)
		go p.readLines()
	})

	select {
	case <-ctx.Done():
		return "", goerr.Wrap(ctx.Err(), "prompt interrupted")
	case l, ok := <-p.lines:
		if !ok {
			return "", goerr.Wrap(io.EOF, "failed to read answer")
		}
		if l.err != nil {
			return "", goerr.Wrap(l.err, "failed to read answer")
		}
		return l.text, nil
	}
}

func (p *Prompter) readLines() {
	defer close(p.lines)
	for {
		text, err := p.in.ReadString('\n')
		if err == io.EOF && text != "" {
			err = nil
		}
		p.lines <- line{text: text, err: err}
		if err != nil {
			return
		}
	}
}

// ReadPassword reads a password without echo from the terminal. It
// returns fallback when stdin is not a terminal.
func ReadPassword(out io.Writer, prompt, fallback string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !xterm.IsTerminal(fd) {
		if fallback == "" {
			return "", goerr.New("password is required", goerr.T(model.ErrTagMissingInput))
		}
		return fallback, nil
	}

	fmt.Fprint(out, prompt)
	raw, err := xterm.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read password")
	}
	return string(raw), nil
}
