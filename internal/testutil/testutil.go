package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"biodeck/internal/book"
	"biodeck/internal/person"
)

// TestPersons is a small fixed catalog for tests.
var TestPersons = []person.Person{
	{
		Name:      "Phil Knight",
		FirstName: "Phil",
		BirthYear: 1938,
		Category:  "entrepreneur",
		Book:      "Shoe Dog",
		Company:   "Nike",
	},
	{
		Name:      "Richard Feynman",
		FirstName: "Richard",
		BirthYear: 1918,
		Category:  "scientist",
		Book:      "Surely You're Joking, Mr. Feynman!",
		Field:     "Physics",
	},
	{
		Name:      "Maya Angelou",
		FirstName: "Maya",
		BirthYear: 1928,
		Category:  "artist",
		Book:      "I Know Why the Caged Bird Sings",
		Country:   "USA",
	},
}

// TestBook is a three-chapter book whose age ranges cover childhood, career
// and late life.
var TestBook = book.Book{
	Title:  "Shoe Dog",
	Author: "Phil Knight",
	Chapters: []book.Chapter{
		{Title: "Dawn", Text: "First.\n\nSecond.\n\nThird.", AgeMin: 0, AgeMax: 23},
		{Title: "1962", Text: "Fourth.\n\nFifth.", AgeMin: 24, AgeMax: 26},
		{Title: "Night", Text: "Sixth.", AgeMin: 27, AgeMax: 100},
	},
}

// NewRequest creates an HTTP request with an optional JSON body.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	raw, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse is a decoded recorded response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes a recorder into a RecordResponse.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	raw, _ := io.ReadAll(result.Body)
	var body map[string]interface{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   body,
	}
}
