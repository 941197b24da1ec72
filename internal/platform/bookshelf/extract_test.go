package bookshelf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsContentChapter(t *testing.T) {
	assert.True(t, IsContentChapter("Chapter One"))
	assert.True(t, IsContentChapter("Dawn"))

	assert.False(t, IsContentChapter("Copyright"))
	assert.False(t, IsContentChapter("  Table of Contents  "))
	assert.False(t, IsContentChapter("ABOUT THE AUTHOR"))
}

func TestCleanText(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		got := CleanText("one\n\ntwo")
		assert.Equal(t, "one\n\ntwo", got)
	})

	t.Run("whitespace normalized", func(t *testing.T) {
		got := CleanText("one  \t word\n\n\n\n\ntwo")
		assert.Equal(t, "one word\n\ntwo", got)
	})

	t.Run("html stripped to block paragraphs", func(t *testing.T) {
		got := CleanText("<html><body><h1>Dawn</h1><p>First paragraph.</p><p>Second paragraph.</p></body></html>")
		assert.Equal(t, "Dawn\n\nFirst paragraph.\n\nSecond paragraph.", got)
	})

	t.Run("script and style dropped", func(t *testing.T) {
		got := CleanText("<p>kept</p><script>dropped()</script><style>.x{}</style>")
		assert.Equal(t, "kept", got)
	})

	t.Run("markup without block elements keeps text", func(t *testing.T) {
		got := CleanText("a <b>bold</b> claim")
		assert.Equal(t, "a bold claim", got)
	})
}
