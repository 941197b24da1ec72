package book

import (
	"context"
	"log"

	"biodeck/internal/person"
)

// Service fetches books lazily, once per like action. It never returns an
// error: any fetch failure, and any book with no chapters, degrades to a
// single-chapter placeholder so the reader always has something to open.
type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Get returns the book for the person at the given catalog index.
func (s *Service) Get(ctx context.Context, p person.Person, personIndex int) Book {
	b, err := s.source.BookFor(ctx, personIndex)
	if err != nil {
		log.Printf("book fetch failed person=%q index=%d err=%v", p.Name, personIndex, err)
		return Placeholder(p)
	}
	if len(b.Chapters) == 0 {
		return Placeholder(p)
	}
	return Normalize(b)
}

// Placeholder builds the stand-in book used when no real copy is available:
// one chapter spanning the full age range, titled from the person's book
// field when present.
func Placeholder(p person.Person) Book {
	title := p.Book
	if title == "" {
		title = "Autobiography"
	}
	return Book{
		Title:  title,
		Author: p.Name,
		Chapters: []Chapter{{
			Title:  title,
			Text:   "No readable copy of this book is available.",
			AgeMin: DefaultAgeMin,
			AgeMax: DefaultAgeMax,
		}},
	}
}
