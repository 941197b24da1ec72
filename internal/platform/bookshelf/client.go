// Package bookshelf talks to the upstream book provider. Responses carry
// chapter text that may still be raw HTML from the epub it was cut from, so
// the client cleans it to plain paragraphs and drops front and back matter
// before handing books to the rest of the system.
package bookshelf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"biodeck/internal/book"
)

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(baseURL, userAgent string, rps int, maxRetries int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

// bookResponse matches /api/book/{index}. Age bounds are absent when the
// provider has no estimate for a chapter.
type bookResponse struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Chapters []struct {
		Title  string `json:"title"`
		Text   string `json:"text"`
		AgeMin *int   `json:"age_min"`
		AgeMax *int   `json:"age_max"`
	} `json:"chapters"`
}

// BookFor fetches the book for the person at a catalog index.
func (c *Client) BookFor(ctx context.Context, personIndex int) (book.Book, error) {
	u := fmt.Sprintf("%s/api/book/%d", c.baseURL, personIndex)

	var res bookResponse
	if err := c.get(ctx, u, &res); err != nil {
		return book.Book{}, err
	}

	b := book.Book{Title: res.Title, Author: res.Author}
	for _, ch := range res.Chapters {
		if !IsContentChapter(ch.Title) {
			continue
		}
		ageMin := book.DefaultAgeMin
		if ch.AgeMin != nil {
			ageMin = *ch.AgeMin
		}
		ageMax := book.DefaultAgeMax
		if ch.AgeMax != nil {
			ageMax = *ch.AgeMax
		}
		b.Chapters = append(b.Chapters, book.Chapter{
			Title:  ch.Title,
			Text:   CleanText(ch.Text),
			AgeMin: ageMin,
			AgeMax: ageMax,
		})
	}
	return book.Normalize(b), nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
