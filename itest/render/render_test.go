package render

import (
	"strings"
	"testing"

	dw "github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestDisplayScalars(t *testing.T) {
	assert.Equal(t, "2", Display(2))
	assert.Equal(t, "2.5", Display(2.5))
	assert.Equal(t, "true", Display(true))
	assert.Equal(t, "hello", Display("hello"))
	assert.Equal(t, "<nil>", Display(nil))
}

func TestDisplayComposite(t *testing.T) {
	assert.Equal(t, "[1 2 3]", Display([]int{1, 2, 3}))

	type point struct{ X, Y int }
	assert.Equal(t, "{1 2}", Display(point{1, 2}))
}

func TestDisplayReplacesControlRunes(t *testing.T) {
	got := Display("a\x1b[31mb\x00c")
	assert.NotContains(t, got, "\x1b")
	assert.NotContains(t, got, "\x00")
	assert.Contains(t, got, "�")
}

func TestDisplayKeepsMultilineOutSingleLine(t *testing.T) {
	got := Display("first\nsecond")
	assert.NotContains(t, got, "\n")
}

func TestDisplayTruncatesWideValues(t *testing.T) {
	long := strings.Repeat("x", 500)
	got := Display(long)
	assert.LessOrEqual(t, dw.StringWidth(got), MaxWidth)
	assert.True(t, strings.HasSuffix(got, tail))
}

func TestDisplayShortValueUntouched(t *testing.T) {
	short := strings.Repeat("x", MaxWidth)
	assert.Equal(t, short, Display(short))
}
