package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/faithdive/faith-dive/models"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "exactly-10", fitText("exactly-10", 10))
	assert.Equal(t, "this is...", fitText("this is too long", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "untouched", fitText("untouched", 0))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "one two\nthree", wrapText("one two three", 8))
	assert.Equal(t, "one two three", wrapText("one two three", 0))
	assert.Equal(t, "single", wrapText("single", 3))
}

func TestShareText(t *testing.T) {
	verse := models.Verse{Reference: "John 3:16", Text: " For God so loved the world "}
	assert.Equal(t, `"For God so loved the world" - John 3:16`, shareText(verse))
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Equal(t, "", humanizeServerUnavailableError(nil))

	offline := errors.New(`Get "http://localhost:8080/api/bible/search": dial tcp 127.0.0.1:8080: connect: connection refused`)
	assert.Equal(t,
		"You appear to be offline. Saved journals and favorites are still available.",
		humanizeServerUnavailableError(offline))

	other := errors.New("upstream api error: status 500")
	assert.Equal(t, "upstream api error: status 500", humanizeServerUnavailableError(other))
}
