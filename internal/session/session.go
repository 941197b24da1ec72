// Package session owns every piece of mutable session state: the shuffled
// deck and its cursor, the desired age, the library of liked persons, and
// the reader position inside the currently open book. All mutation goes
// through the Controller so no ambient state exists anywhere else.
package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"biodeck/internal/book"
	"biodeck/internal/deck"
	"biodeck/internal/library"
	"biodeck/internal/person"
	"biodeck/internal/reader"
)

// ErrNotReading is returned for reading-only actions taken while browsing.
var ErrNotReading = errors.New("no book is open")

// ErrNotInLibrary is returned when a library entry does not exist.
var ErrNotInLibrary = errors.New("person is not in the library")

// Config carries the tunable session defaults.
type Config struct {
	DesiredAge int
	PageSize   int
	Seed       int64 // deck shuffle seed; 0 means time-based
}

// Controller is the single owner of session state. The modeled session is
// single-user, but the HTTP server is concurrent, so a mutex serializes
// actions. Book fetches run outside the lock and carry a generation token;
// a fetch that resolves after any later state change is discarded instead
// of clobbering the reader with a stale book.
type Controller struct {
	mu         sync.Mutex
	persons    []person.Person
	order      []int // deck position -> catalog index
	deck       *deck.Controller
	books      *book.Service
	lib        *library.Set
	desiredAge int
	pageSize   int
	rdr        *reader.Reader // non-nil exactly while reading
	gen        uint64
}

// NewController shuffles the catalog into a deck and starts browsing at
// position 0. An empty catalog yields the terminal no-more-people state.
func NewController(persons []person.Person, books *book.Service, cfg Config) *Controller {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = reader.DefaultPageSize
	}
	return &Controller{
		persons:    persons,
		order:      rand.New(rand.NewSource(seed)).Perm(len(persons)),
		deck:       deck.New(len(persons)),
		books:      books,
		lib:        library.NewSet(),
		desiredAge: cfg.DesiredAge,
		pageSize:   pageSize,
	}
}

// ReaderView is the reader slice of a snapshot: current position plus the
// paragraphs visible on the page.
type ReaderView struct {
	BookTitle    string   `json:"book_title"`
	Chapter      int      `json:"chapter"`
	ChapterTitle string   `json:"chapter_title"`
	ChapterCount int      `json:"chapter_count"`
	Page         int      `json:"page"`
	PageCount    int      `json:"page_count"`
	Paragraphs   []string `json:"paragraphs"`
}

// Snapshot is the full observable session state after an action.
type Snapshot struct {
	State        string         `json:"state"`
	DeckIndex    int            `json:"deck_index"`
	DeckSize     int            `json:"deck_size"`
	DesiredAge   int            `json:"desired_age"`
	LibraryCount int            `json:"library_count"`
	Person       *person.Person `json:"person,omitempty"`
	Reader       *ReaderView    `json:"reader,omitempty"`
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SetDesiredAge updates the desired age. While reading this re-runs chapter
// selection and resets to page 0; page turns alone never do.
func (c *Controller) SetDesiredAge(age int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.desiredAge = age
	if c.rdr != nil {
		c.rdr.SetDesiredAge(age)
	}
	return c.snapshotLocked()
}

// Reject advances the deck circularly, closing any open book first.
func (c *Controller) Reject() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.deck.Reject()
	c.rdr = nil
	return c.snapshotLocked()
}

// Like fetches the current person's book and opens it at the chapter
// selected for the desired age. The fetch may suspend; if any other action
// lands in the meantime, its result is discarded.
func (c *Controller) Like(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.deck.State() != deck.StateBrowsing {
		s := c.snapshotLocked()
		c.mu.Unlock()
		return s, deck.ErrNotBrowsing
	}
	catalogIdx := c.order[c.deck.Index()]
	p := c.persons[catalogIdx]
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	b := c.books.Get(ctx, p, catalogIdx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// Superseded while the fetch was in flight.
		return c.snapshotLocked(), nil
	}
	if err := c.deck.Accept(); err != nil {
		return c.snapshotLocked(), err
	}
	c.rdr = reader.New(b, c.desiredAge, c.pageSize)
	return c.snapshotLocked(), nil
}

// AddToLibrary records the person currently being read, then performs the
// same transition as a close. Re-liking a person leaves the library as is.
func (c *Controller) AddToLibrary() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deck.State() != deck.StateReading {
		return c.snapshotLocked(), ErrNotReading
	}
	c.gen++
	idx := c.deck.Index()
	c.lib.Add(c.persons[c.order[idx]], idx)
	c.deck.Close()
	c.rdr = nil
	return c.snapshotLocked(), nil
}

// Library returns the liked persons in insertion order.
func (c *Controller) Library() []library.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lib.Entries()
}

// OpenLibraryEntry jumps straight to reading a liked person, from any state.
func (c *Controller) OpenLibraryEntry(ctx context.Context, firstName string) (Snapshot, error) {
	c.mu.Lock()
	entry, ok := c.lib.Find(firstName)
	if !ok {
		s := c.snapshotLocked()
		c.mu.Unlock()
		return s, ErrNotInLibrary
	}
	catalogIdx := c.order[entry.DeckIndex]
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	b := c.books.Get(ctx, entry.Person, catalogIdx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return c.snapshotLocked(), nil
	}
	if err := c.deck.Jump(entry.DeckIndex); err != nil {
		return c.snapshotLocked(), err
	}
	c.rdr = reader.New(b, c.desiredAge, c.pageSize)
	return c.snapshotLocked(), nil
}

// Forward turns the page forward; a no-op at the end of the last chapter.
func (c *Controller) Forward() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rdr == nil {
		return c.snapshotLocked(), ErrNotReading
	}
	c.rdr.Forward()
	return c.snapshotLocked(), nil
}

// Backward turns the page backward; a no-op at the start of the first
// chapter.
func (c *Controller) Backward() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rdr == nil {
		return c.snapshotLocked(), ErrNotReading
	}
	c.rdr.Backward()
	return c.snapshotLocked(), nil
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		State:        c.deck.State(),
		DeckIndex:    c.deck.Index(),
		DeckSize:     c.deck.Size(),
		DesiredAge:   c.desiredAge,
		LibraryCount: c.lib.Len(),
	}
	if c.deck.State() != deck.StateEmpty {
		p := c.persons[c.order[c.deck.Index()]]
		s.Person = &p
	}
	if c.rdr != nil {
		pos := c.rdr.Position()
		s.Reader = &ReaderView{
			BookTitle:    c.rdr.Book().Title,
			Chapter:      pos.Chapter,
			ChapterTitle: c.rdr.ChapterTitle(),
			ChapterCount: len(c.rdr.Book().Chapters),
			Page:         pos.Page,
			PageCount:    c.rdr.PageCount(),
			Paragraphs:   c.rdr.Paragraphs(),
		}
	}
	return s
}
