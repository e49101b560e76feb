// Package diag is the diagnostic channel test assertions report into.
//
// Error messages and plain separator lines travel on separate streams so
// a runner can tell them apart from the program's normal output. Whether
// error messages are printed at all is a process-wide toggle mirroring
// the host engine's own "print error messages" switch; a test may flip
// it, the runner restores it.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

type Options struct {
	// Out receives plain diagnostic output, such as the blank separator
	// lines printed before an error message. Defaults to os.Stdout.
	Out io.Writer

	// Err receives error-severity messages. Defaults to os.Stderr.
	Err io.Writer
}

// Console is the concrete diagnostic channel. Error messages start
// enabled.
type Console struct {
	out io.Writer
	err io.Writer

	// The toggle is engine-global state, not per-test state, so it is
	// atomic even though a single test runs synchronously.
	disabled atomic.Bool
}

// Default writes to the process's standard streams.
var Default = NewConsole(Options{})

func NewConsole(opts Options) *Console {
	c := &Console{
		out: opts.Out,
		err: opts.Err,
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.err == nil {
		c.err = os.Stderr
	}
	return c
}

// PrintNewline writes a blank line to the normal stream, terminating any
// previous unterminated output so a following error message starts
// cleanly. It is not subject to the error-message toggle.
func (c *Console) PrintNewline() {
	fmt.Fprintln(c.out)
}

// PrintError writes message to the error stream. Dropped entirely while
// error messages are disabled.
func (c *Console) PrintError(message string) {
	if c.disabled.Load() {
		return
	}
	fmt.Fprintln(c.err, message)
}

func (c *Console) SetErrorMessages(enabled bool) {
	c.disabled.Store(!enabled)
}

func (c *Console) ErrorMessagesEnabled() bool {
	return !c.disabled.Load()
}

// Preserve snapshots the error-message toggle and returns the function
// that puts it back. The runner defers it around every test so the
// restore runs on every exit path.
func Preserve(c *Console) func() {
	prev := c.ErrorMessagesEnabled()
	return func() { c.SetErrorMessages(prev) }
}

// Silenced disables error messages and returns the restore function
// that puts the toggle back to its previous state.
func Silenced(c *Console) func() {
	restore := Preserve(c)
	c.SetErrorMessages(false)
	return restore
}
