package bookshelf

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Titles that indicate non-content chapters.
var nonContentTitles = map[string]bool{
	"title page": true, "titlepage": true, "cover": true, "copyright": true,
	"dedication": true, "acknowledgments": true, "acknowledgements": true,
	"notes": true, "index": true, "bibliography": true, "references": true,
	"about the author": true, "also by": true, "praise for": true,
	"contents": true, "table of contents": true, "photographs": true,
	"photo insert": true, "maps": true, "illustrations": true,
}

// IsContentChapter reports whether a chapter title indicates actual content
// rather than front or back matter.
func IsContentChapter(title string) bool {
	return !nonContentTitles[strings.ToLower(strings.TrimSpace(title))]
}

var (
	runsOfSpace    = regexp.MustCompile(`[ \t]+`)
	runsOfNewlines = regexp.MustCompile(`\n{3,}`)
)

// CleanText turns chapter text into plain blank-line-separated paragraphs.
// Text without markup passes through with whitespace normalized; HTML is
// stripped to the text of its block elements.
func CleanText(text string) string {
	if strings.Contains(text, "<") {
		if stripped, err := stripHTML(text); err == nil {
			text = stripped
		}
	}
	text = runsOfSpace.ReplaceAllString(text, " ")
	text = runsOfNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func stripHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style").Remove()

	var sb strings.Builder
	blocks := doc.Find("p, h1, h2, h3, h4, h5, h6, li")
	if blocks.Length() == 0 {
		return doc.Text(), nil
	}
	blocks.Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if t == "" {
			return
		}
		sb.WriteString(t)
		sb.WriteString("\n\n")
	})
	return sb.String(), nil
}
