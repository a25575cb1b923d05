package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrInjectUnsupported is returned where terminal injection is not available
var ErrInjectUnsupported = errors.New("terminal injection not supported")

// Injector delivers a chosen command back to the user's shell. With run set,
// the command is followed by a newline so the shell executes it.
type Injector interface {
	Inject(command string, run bool) error
}

// PrintInjector writes the command to W, one per line. Shell key bindings
// capture it with command substitution, so run is ignored.
type PrintInjector struct {
	W io.Writer
}

func (p PrintInjector) Inject(command string, _ bool) error {
	_, err := fmt.Fprintln(p.W, command)
	return err
}

// PartialInjectError reports an injection that failed after some bytes had
// already reached the terminal
type PartialInjectError struct {
	Written int
	Total   int
	Err     error
}

func (e *PartialInjectError) Error() string {
	return fmt.Sprintf("injected %d of %d bytes: %v", e.Written, e.Total, e.Err)
}

func (e *PartialInjectError) Unwrap() error {
	return e.Err
}

// pushBytes feeds s to push one byte at a time. A failure on the first byte
// is returned as is; a later one as a *PartialInjectError.
func pushBytes(s string, push func(byte) error) error {
	for i := 0; i < len(s); i++ {
		if err := push(s[i]); err != nil {
			if i == 0 {
				return err
			}
			return &PartialInjectError{Written: i, Total: len(s), Err: err}
		}
	}
	return nil
}

// FallbackInjector tries Primary and uses Secondary if it fails. A partial
// injection is not retried, since the terminal already holds part of the
// command.
type FallbackInjector struct {
	Primary   Injector
	Secondary Injector
}

func (f FallbackInjector) Inject(command string, run bool) error {
	if err := f.Primary.Inject(command, run); err != nil {
		var partial *PartialInjectError
		if errors.As(err, &partial) {
			return err
		}
		if err2 := f.Secondary.Inject(command, run); err2 != nil {
			return errors.Join(err, err2)
		}
	}
	return nil
}

// Choose returns the injector to use. Print mode, or a stdin that is not a
// terminal, writes to out; otherwise the command is pushed into the
// terminal's input queue, falling back to out if the kernel refuses.
func Choose(printMode bool, out io.Writer) Injector {
	printer := PrintInjector{W: out}
	if printMode || !StdinIsTerminal() {
		return printer
	}
	return FallbackInjector{Primary: TTYInjector{Fd: int(os.Stdin.Fd())}, Secondary: printer}
}

// StdinIsTerminal reports whether standard input is an interactive terminal
func StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
