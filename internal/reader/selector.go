package reader

import (
	"biodeck/internal/book"
)

// SelectChapter picks the chapter to open first for a desired age: among
// chapters whose inclusive age range contains the age, the one with the
// narrowest span wins, earliest chapter on ties. When no range contains the
// age the first chapter is used. The chapter list must be non-empty; the
// book service guarantees that.
func SelectChapter(chapters []book.Chapter, desiredAge int) int {
	best := -1
	bestSpan := 0
	for i, ch := range chapters {
		if desiredAge < ch.AgeMin || desiredAge > ch.AgeMax {
			continue
		}
		span := ch.AgeMax - ch.AgeMin
		if best == -1 || span < bestSpan {
			best = i
			bestSpan = span
		}
	}
	if best == -1 {
		return 0
	}
	return best
}
