package book

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"biodeck/internal/person"
)

func TestServiceGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSource := NewMockSource(ctrl)
	service := NewService(mockSource)

	knight := person.Person{Name: "Phil Knight", FirstName: "Phil", Book: "Shoe Dog"}

	t.Run("fetch success", func(t *testing.T) {
		fetched := Book{
			Title: "Shoe Dog",
			Chapters: []Chapter{
				{Title: "Dawn", Text: "text", AgeMin: 24, AgeMax: 26},
			},
		}
		mockSource.EXPECT().BookFor(gomock.Any(), 3).Return(fetched, nil)

		got := service.Get(context.Background(), knight, 3)
		assert.Equal(t, "Shoe Dog", got.Title)
		assert.Len(t, got.Chapters, 1)
	})

	t.Run("fetch failure degrades to placeholder", func(t *testing.T) {
		mockSource.EXPECT().BookFor(gomock.Any(), 3).Return(Book{}, errors.New("boom"))

		got := service.Get(context.Background(), knight, 3)
		assert.Equal(t, "Shoe Dog", got.Title)
		assert.Len(t, got.Chapters, 1)
		assert.Equal(t, DefaultAgeMin, got.Chapters[0].AgeMin)
		assert.Equal(t, DefaultAgeMax, got.Chapters[0].AgeMax)
	})

	t.Run("empty chapters degrade to placeholder", func(t *testing.T) {
		mockSource.EXPECT().BookFor(gomock.Any(), 3).Return(Book{Title: "Shoe Dog"}, nil)

		got := service.Get(context.Background(), knight, 3)
		assert.Len(t, got.Chapters, 1)
	})

	t.Run("placeholder title falls back to Autobiography", func(t *testing.T) {
		mockSource.EXPECT().BookFor(gomock.Any(), 0).Return(Book{}, errors.New("boom"))

		got := service.Get(context.Background(), person.Person{Name: "Nameless"}, 0)
		assert.Equal(t, "Autobiography", got.Title)
	})

	t.Run("reversed age range normalized", func(t *testing.T) {
		fetched := Book{
			Title:    "Shoe Dog",
			Chapters: []Chapter{{Title: "Dawn", AgeMin: 40, AgeMax: 20}},
		}
		mockSource.EXPECT().BookFor(gomock.Any(), 3).Return(fetched, nil)

		got := service.Get(context.Background(), knight, 3)
		assert.Equal(t, 20, got.Chapters[0].AgeMin)
		assert.Equal(t, 40, got.Chapters[0].AgeMax)
	})
}
