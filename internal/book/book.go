package book

// Age range bounds applied when a chapter carries no estimate.
const (
	DefaultAgeMin = 0
	DefaultAgeMax = 100
)

// Chapter is one unit of a book, tagged with the estimated age range of the
// protagonist during its events. The range is inclusive on both ends.
type Chapter struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	AgeMin int    `json:"age_min"`
	AgeMax int    `json:"age_max"`
}

// Book is an ordered sequence of chapters.
type Book struct {
	Title    string    `json:"title"`
	Author   string    `json:"author,omitempty"`
	Chapters []Chapter `json:"chapters"`
}

// Normalize repairs chapter age ranges in place: a reversed range (min > max)
// would make the chapter unselectable, so it is swapped. The upstream source
// never validates these.
func Normalize(b Book) Book {
	for i, ch := range b.Chapters {
		if ch.AgeMin > ch.AgeMax {
			b.Chapters[i].AgeMin, b.Chapters[i].AgeMax = ch.AgeMax, ch.AgeMin
		}
	}
	return b
}
