package person

import (
	"net/http"

	"biodeck/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /api/persons. A missing or unreadable catalog is
// reported as an empty list, not an error.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	persons, err := h.service.List(r.Context())
	if err != nil {
		persons = nil
	}
	if persons == nil {
		persons = []Person{}
	}
	httpx.JSONSuccessWithRequest(r, w, persons, map[string]any{
		"total": len(persons),
	})
}
