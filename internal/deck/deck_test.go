package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectWrapsAround(t *testing.T) {
	c := New(3)
	c.Reject()
	c.Reject()
	assert.Equal(t, 2, c.Index())

	c.Reject()
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, StateBrowsing, c.State())
}

func TestAcceptAndClose(t *testing.T) {
	c := New(3)
	c.Reject() // index 1

	require.NoError(t, c.Accept())
	assert.Equal(t, StateReading, c.State())
	assert.Equal(t, 1, c.Index())

	// Accept while already reading is rejected.
	assert.ErrorIs(t, c.Accept(), ErrNotBrowsing)

	c.Close()
	assert.Equal(t, StateBrowsing, c.State())
	assert.Equal(t, 2, c.Index())
}

func TestRejectWhileReadingClosesFirst(t *testing.T) {
	c := New(2)
	require.NoError(t, c.Accept())

	c.Reject()
	assert.Equal(t, StateBrowsing, c.State())
	assert.Equal(t, 1, c.Index())
}

func TestCloseOutsideReadingIsNoop(t *testing.T) {
	c := New(2)
	c.Close()
	assert.Equal(t, StateBrowsing, c.State())
	assert.Equal(t, 0, c.Index())
}

func TestJump(t *testing.T) {
	c := New(5)

	t.Run("from browsing", func(t *testing.T) {
		require.NoError(t, c.Jump(3))
		assert.Equal(t, StateReading, c.State())
		assert.Equal(t, 3, c.Index())
	})

	t.Run("from reading", func(t *testing.T) {
		require.NoError(t, c.Jump(1))
		assert.Equal(t, 1, c.Index())
	})

	t.Run("out of range", func(t *testing.T) {
		assert.ErrorIs(t, c.Jump(5), ErrOutOfRange)
		assert.ErrorIs(t, c.Jump(-1), ErrOutOfRange)
	})
}

func TestEmptyDeckIsTerminal(t *testing.T) {
	c := New(0)
	assert.Equal(t, StateEmpty, c.State())

	c.Reject()
	assert.Equal(t, StateEmpty, c.State())

	assert.ErrorIs(t, c.Accept(), ErrNotBrowsing)
	assert.ErrorIs(t, c.Jump(0), ErrOutOfRange)
}
