package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleStreamsAreSeparate(t *testing.T) {
	var out, err bytes.Buffer
	c := NewConsole(Options{Out: &out, Err: &err})

	c.PrintNewline()
	c.PrintError("boom")

	assert.Equal(t, "\n", out.String())
	assert.Equal(t, "boom\n", err.String())
}

func TestConsoleToggleGatesErrors(t *testing.T) {
	var out, err bytes.Buffer
	c := NewConsole(Options{Out: &out, Err: &err})

	assert.True(t, c.ErrorMessagesEnabled())
	c.SetErrorMessages(false)
	assert.False(t, c.ErrorMessagesEnabled())

	c.PrintError("dropped")
	assert.Empty(t, err.String())

	// The newline separator is plain output and ignores the toggle.
	c.PrintNewline()
	assert.Equal(t, "\n", out.String())

	c.SetErrorMessages(true)
	c.PrintError("kept")
	assert.Equal(t, "kept\n", err.String())
}

func TestPreserveRestoresEitherState(t *testing.T) {
	c := NewConsole(Options{Err: &bytes.Buffer{}})

	restore := Preserve(c)
	c.SetErrorMessages(false)
	restore()
	assert.True(t, c.ErrorMessagesEnabled())

	c.SetErrorMessages(false)
	restore = Preserve(c)
	c.SetErrorMessages(true)
	restore()
	assert.False(t, c.ErrorMessagesEnabled())
}

func TestSilencedRestoresPreviousState(t *testing.T) {
	var err bytes.Buffer
	c := NewConsole(Options{Err: &err})

	restore := Silenced(c)
	assert.False(t, c.ErrorMessagesEnabled())
	restore()
	assert.True(t, c.ErrorMessagesEnabled())
}

func TestSilencedWhileAlreadyDisabled(t *testing.T) {
	c := NewConsole(Options{Err: &bytes.Buffer{}})
	c.SetErrorMessages(false)

	restore := Silenced(c)
	restore()
	assert.False(t, c.ErrorMessagesEnabled(),
		"restore should put back the disabled state, not force-enable")
}
