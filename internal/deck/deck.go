// Package deck implements the circular browsing sequence: a fixed-size deck
// of candidate positions, a cursor, and the browsing/reading transitions.
// The deck never depletes; wrapping past the last index simply re-shows
// earlier entries.
package deck

import (
	"errors"
)

const (
	StateBrowsing = "BROWSING"
	StateReading  = "READING"
	StateEmpty    = "NO_MORE_PEOPLE"
)

// ErrNotBrowsing is returned when an accept is attempted outside browsing.
var ErrNotBrowsing = errors.New("deck is not in the browsing state")

// ErrOutOfRange is returned for a jump to an index outside the deck.
var ErrOutOfRange = errors.New("deck index out of range")

// Controller holds the deck cursor and state. Not safe for concurrent use;
// the session controller serializes access.
type Controller struct {
	size  int
	index int
	state string
}

// New creates a controller over a deck of the given size. A zero-size deck
// starts, and stays, in the terminal empty state.
func New(size int) *Controller {
	c := &Controller{size: size, state: StateBrowsing}
	if size <= 0 {
		c.state = StateEmpty
	}
	return c
}

func (c *Controller) State() string { return c.state }
func (c *Controller) Index() int    { return c.index }
func (c *Controller) Size() int     { return c.size }

// Reject advances the cursor circularly. From reading it closes first, so a
// reject while reading is the same transition as a close.
func (c *Controller) Reject() {
	if c.state == StateEmpty {
		return
	}
	c.index = (c.index + 1) % c.size
	c.state = StateBrowsing
}

// Accept enters reading at the current index.
func (c *Controller) Accept() error {
	if c.state != StateBrowsing {
		return ErrNotBrowsing
	}
	c.state = StateReading
	return nil
}

// Close leaves reading and advances to the next person.
func (c *Controller) Close() {
	if c.state != StateReading {
		return
	}
	c.Reject()
}

// Jump enters reading at an arbitrary deck index, from any state.
func (c *Controller) Jump(index int) error {
	if c.state == StateEmpty {
		return ErrOutOfRange
	}
	if index < 0 || index >= c.size {
		return ErrOutOfRange
	}
	c.index = index
	c.state = StateReading
	return nil
}
