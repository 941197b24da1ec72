package book

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"biodeck/internal/httpx"
	"biodeck/internal/person"
)

type HTTPHandler struct {
	service *Service
	persons *person.Service
}

func NewHTTPHandler(service *Service, persons *person.Service) *HTTPHandler {
	return &HTTPHandler{service: service, persons: persons}
}

// Get handles GET /api/book/{index}. An unknown index is a 404; a failed
// fetch for a known person is not, it degrades to the placeholder book.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("index")
	if raw == "" {
		raw = strings.TrimPrefix(r.URL.Path, "/api/book/")
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid person index")
		return
	}

	p, err := h.persons.Get(r.Context(), index)
	if err != nil {
		// A catalog read failure means the person is unknown too.
		if !errors.Is(err, person.ErrNotFound) {
			log.Printf("catalog read failed: %v", err)
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Person not found")
		return
	}

	httpx.JSONSuccessWithRequest(r, w, h.service.Get(r.Context(), p, index), nil)
}
