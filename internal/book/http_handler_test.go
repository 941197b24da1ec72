package book

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"biodeck/internal/person"
)

func TestHTTPHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSource := NewMockSource(ctrl)
	mockRepo := person.NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockSource), person.NewService(mockRepo))

	catalog := []person.Person{
		{Name: "Phil Knight", FirstName: "Phil", Book: "Shoe Dog"},
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(catalog, nil)
		mockSource.EXPECT().BookFor(gomock.Any(), 0).Return(Book{
			Title:    "Shoe Dog",
			Chapters: []Chapter{{Title: "Dawn", AgeMin: 24, AgeMax: 26}},
		}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/book/0", nil)
		r.SetPathValue("index", "0")

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Shoe Dog")
	})

	t.Run("fetch failure still 200 with placeholder", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(catalog, nil)
		mockSource.EXPECT().BookFor(gomock.Any(), 0).Return(Book{}, errors.New("upstream down"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/book/0", nil)
		r.SetPathValue("index", "0")

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Shoe Dog")
	})

	t.Run("index out of range", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(catalog, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/book/9", nil)
		r.SetPathValue("index", "9")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric index", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/book/abc", nil)
		r.SetPathValue("index", "abc")

		handler.Get(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
