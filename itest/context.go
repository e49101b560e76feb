// Package itest holds the assertion context that integration test
// functions run against. The runner hands every test function a fresh
// Context, the test makes assertions on it, and the runner reads the
// accumulated failure state back once the function returns.
package itest

import (
	"fmt"

	"github.com/patataofcourse/gdext/itest/diag"
	"github.com/patataofcourse/gdext/itest/equality"
	"github.com/patataofcourse/gdext/itest/render"
)

// Context tracks the outcome of a single test invocation.
//
// Failed assertions are recorded, never thrown: execution of the test
// continues unless the caller returns early on the boolean result. Once
// a context has failed it stays failed for its lifetime.
type Context struct {
	console *diag.Console
	failed  bool
}

type Options struct {
	// Console for diagnostic output. Defaults to diag.Default.
	Console *diag.Console
}

func NewContext(opts Options) *Context {
	console := opts.Console
	if console == nil {
		console = diag.Default
	}
	return &Context{console: console}
}

// Failed reports whether any assertion in this context has failed so
// far. The runner reads this after the test function returns.
func (c *Context) Failed() bool { return c.failed }

// AssertThat checks a boolean condition. On failure it records the
// failure, prints a diagnostic, and returns false; the caller may use
// the result to short-circuit the rest of the test.
func (c *Context) AssertThat(condition bool, message ...string) bool {
	if condition {
		return true
	}
	c.fail()
	if msg := first(message); msg != "" {
		c.console.PrintError(fmt.Sprintf("assertion failed:  %s", msg))
	} else {
		c.console.PrintError("assertion failed.")
	}
	return false
}

// AssertEq checks that left and right are equal by value, with both
// values included in the diagnostic on failure. Equality follows
// equality.Equal: no numeric coercion across types.
func (c *Context) AssertEq(left, right any, message ...string) bool {
	if equality.Equal(left, right) {
		return true
	}
	c.fail()
	header := "assertion failed:  (left == right)"
	if msg := first(message); msg != "" {
		header = fmt.Sprintf("assertion failed:  %s", msg)
	}
	c.console.PrintError(fmt.Sprintf("%s\n  left: %s\n right: %s",
		header, render.Display(left), render.Display(right)))
	return false
}

// AssertFail marks a code path that must never be reached. It always
// records a failure and returns false.
func (c *Context) AssertFail(message ...string) bool {
	c.fail()
	if msg := first(message); msg != "" {
		c.console.PrintError(
			fmt.Sprintf("Test execution should have failed: %s", msg))
	} else {
		c.console.PrintError("Test execution should have failed")
	}
	return false
}

// DisableErrorMessages turns off the engine's error output, for tests
// that exercise paths expected to error internally. The context never
// turns it back on by itself; the runner restores the toggle after the
// test, whatever happened.
func (c *Context) DisableErrorMessages() {
	c.console.SetErrorMessages(false)
}

// EnableErrorMessages turns the engine's error output back on.
func (c *Context) EnableErrorMessages() {
	c.console.SetErrorMessages(true)
}

// PrintNewline writes a blank diagnostic line, ending any unterminated
// output so the next error message starts on its own line.
func (c *Context) PrintNewline() {
	c.console.PrintNewline()
}

// PrintError writes message on the error stream.
func (c *Context) PrintError(message string) {
	c.console.PrintError(message)
}

// fail flips the context into its terminal failed state and prints the
// separator that precedes every error message.
func (c *Context) fail() {
	c.failed = true
	c.console.PrintNewline()
}

func first(message []string) string {
	if len(message) > 0 {
		return message[0]
	}
	return ""
}
