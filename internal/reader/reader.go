// Package reader implements the in-book navigation rules: which chapter to
// open for a desired age, and paging forward and backward across chapter
// boundaries. Positions form a linear sequence with terminal states at the
// first page of the first chapter and the last page of the last chapter.
package reader

import (
	"biodeck/internal/book"
)

// Position is an ephemeral (chapter, page) pair. It resets whenever a new
// book is loaded or the desired age changes.
type Position struct {
	Chapter int `json:"chapter"`
	Page    int `json:"page"`
}

// Reader owns the position inside one open book. Not safe for concurrent
// use; the session controller serializes access.
type Reader struct {
	book       book.Book
	paragraphs [][]string // split once per chapter
	pageSize   int
	pos        Position
}

// New opens a book at the chapter selected for the desired age, page 0.
func New(b book.Book, desiredAge, pageSize int) *Reader {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	paragraphs := make([][]string, len(b.Chapters))
	for i, ch := range b.Chapters {
		paragraphs[i] = SplitParagraphs(ch.Text)
	}
	r := &Reader{book: b, paragraphs: paragraphs, pageSize: pageSize}
	r.pos = Position{Chapter: SelectChapter(b.Chapters, desiredAge)}
	return r
}

// SetDesiredAge re-runs chapter selection and resets to page 0. Page turns
// within a chapter never re-run selection; only this does.
func (r *Reader) SetDesiredAge(age int) {
	r.pos = Position{Chapter: SelectChapter(r.book.Chapters, age)}
}

// Book returns the open book.
func (r *Reader) Book() book.Book {
	return r.book
}

// Position returns the current (chapter, page) pair.
func (r *Reader) Position() Position {
	return r.pos
}

// ChapterTitle returns the title of the current chapter.
func (r *Reader) ChapterTitle() string {
	if r.pos.Chapter < len(r.book.Chapters) {
		return r.book.Chapters[r.pos.Chapter].Title
	}
	return ""
}

// PageCount returns the page count of the current chapter.
func (r *Reader) PageCount() int {
	return PageCount(len(r.paragraphs[r.pos.Chapter]), r.pageSize)
}

// Paragraphs returns the paragraphs visible on the current page.
func (r *Reader) Paragraphs() []string {
	return PageSlice(r.paragraphs[r.pos.Chapter], r.pos.Page, r.pageSize)
}

// Forward advances one page, crossing into the next chapter at page 0 when
// the current chapter is exhausted. Returns false at the terminal position;
// there is no wraparound.
func (r *Reader) Forward() bool {
	if r.pos.Page < r.PageCount()-1 {
		r.pos.Page++
		return true
	}
	if r.pos.Chapter < len(r.book.Chapters)-1 {
		r.pos = Position{Chapter: r.pos.Chapter + 1}
		return true
	}
	return false
}

// Backward retreats one page, landing on the previous chapter's last page
// when the current chapter's first page is left. Returns false at (0,0).
func (r *Reader) Backward() bool {
	if r.pos.Page > 0 {
		r.pos.Page--
		return true
	}
	if r.pos.Chapter > 0 {
		prev := r.pos.Chapter - 1
		r.pos = Position{
			Chapter: prev,
			Page:    PageCount(len(r.paragraphs[prev]), r.pageSize) - 1,
		}
		return true
	}
	return false
}
