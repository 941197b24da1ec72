// Package library holds the session's liked persons: an append-only set
// deduplicated by first name, each entry remembering the deck index at the
// moment of liking so it can be reopened later.
package library

import (
	"biodeck/internal/person"
)

// Entry pairs a liked person with the deck index at like time.
type Entry struct {
	Person    person.Person `json:"person"`
	DeckIndex int           `json:"deck_index"`
}

// Set keeps entries in insertion order. There is no removal within a
// session. Not safe for concurrent use; the session controller serializes
// access.
type Set struct {
	entries []Entry
	seen    map[string]struct{}
}

func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add records a liked person. Liking the same person again is a no-op;
// the original entry, including its deck index, is kept. Returns whether
// the entry was new.
func (s *Set) Add(p person.Person, deckIndex int) bool {
	if _, ok := s.seen[p.FirstName]; ok {
		return false
	}
	s.seen[p.FirstName] = struct{}{}
	s.entries = append(s.entries, Entry{Person: p, DeckIndex: deckIndex})
	return true
}

// Find returns the entry for a first name.
func (s *Set) Find(firstName string) (Entry, bool) {
	if _, ok := s.seen[firstName]; !ok {
		return Entry{}, false
	}
	for _, e := range s.entries {
		if e.Person.FirstName == firstName {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns all entries in insertion order.
func (s *Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}
