package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitParagraphs(t *testing.T) {
	t.Run("blank line separation", func(t *testing.T) {
		got := SplitParagraphs("one\n\ntwo\n\nthree")
		assert.Equal(t, []string{"one", "two", "three"}, got)
	})

	t.Run("empty paragraphs discarded", func(t *testing.T) {
		got := SplitParagraphs("one\n\n  \n\n\n\ntwo")
		assert.Equal(t, []string{"one", "two"}, got)
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		got := SplitParagraphs("  one \n\n two\n")
		assert.Equal(t, []string{"one", "two"}, got)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, SplitParagraphs(""))
	})
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 3, PageCount(5, 2))
	assert.Equal(t, 2, PageCount(4, 2))
	assert.Equal(t, 1, PageCount(1, 2))
	assert.Equal(t, 1, PageCount(0, 2))
}

func TestPageSlice(t *testing.T) {
	paragraphs := []string{"a", "b", "c", "d", "e"}

	t.Run("full page", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, PageSlice(paragraphs, 0, 2))
		assert.Equal(t, []string{"c", "d"}, PageSlice(paragraphs, 1, 2))
	})

	t.Run("short last page", func(t *testing.T) {
		assert.Equal(t, []string{"e"}, PageSlice(paragraphs, 2, 2))
	})

	t.Run("page past the end", func(t *testing.T) {
		assert.Nil(t, PageSlice(paragraphs, 3, 2))
	})
}
