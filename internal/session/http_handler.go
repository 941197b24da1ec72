package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"biodeck/internal/deck"
	"biodeck/internal/httpx"
)

type HTTPHandler struct {
	ctrl *Controller
}

func NewHTTPHandler(ctrl *Controller) *HTTPHandler {
	return &HTTPHandler{ctrl: ctrl}
}

// Register wires the session action routes onto a mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/session", h.Get)
	mux.HandleFunc("PUT /api/session/age", h.SetAge)
	mux.HandleFunc("POST /api/session/reject", h.Reject)
	mux.HandleFunc("POST /api/session/like", h.Like)
	mux.HandleFunc("POST /api/session/library", h.AddToLibrary)
	mux.HandleFunc("GET /api/session/library", h.Library)
	mux.HandleFunc("POST /api/session/library/{firstName}/open", h.OpenLibraryEntry)
	mux.HandleFunc("POST /api/session/reader/forward", h.Forward)
	mux.HandleFunc("POST /api/session/reader/backward", h.Backward)
}

// Get handles GET /api/session.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccessWithRequest(r, w, h.ctrl.Snapshot(), nil)
}

type setAgeReq struct {
	Age int `json:"age"`
}

// SetAge handles PUT /api/session/age.
func (h *HTTPHandler) SetAge(w http.ResponseWriter, r *http.Request) {
	var req setAgeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}
	if req.Age < 0 {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Age must not be negative")
		return
	}
	httpx.JSONSuccessWithRequest(r, w, h.ctrl.SetDesiredAge(req.Age), nil)
}

// Reject handles POST /api/session/reject.
func (h *HTTPHandler) Reject(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccessWithRequest(r, w, h.ctrl.Reject(), nil)
}

// Like handles POST /api/session/like.
func (h *HTTPHandler) Like(w http.ResponseWriter, r *http.Request) {
	snap, err := h.ctrl.Like(r.Context())
	if err != nil {
		if errors.Is(err, deck.ErrNotBrowsing) {
			httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "CONFLICT", "Not browsing")
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	httpx.JSONSuccessWithRequest(r, w, snap, nil)
}

// AddToLibrary handles POST /api/session/library.
func (h *HTTPHandler) AddToLibrary(w http.ResponseWriter, r *http.Request) {
	snap, err := h.ctrl.AddToLibrary()
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "CONFLICT", "No book is open")
		return
	}
	httpx.JSONSuccessWithRequest(r, w, snap, nil)
}

// Library handles GET /api/session/library.
func (h *HTTPHandler) Library(w http.ResponseWriter, r *http.Request) {
	entries := h.ctrl.Library()
	httpx.JSONSuccessWithRequest(r, w, entries, map[string]any{
		"total": len(entries),
	})
}

// OpenLibraryEntry handles POST /api/session/library/{firstName}/open.
func (h *HTTPHandler) OpenLibraryEntry(w http.ResponseWriter, r *http.Request) {
	firstName := r.PathValue("firstName")
	snap, err := h.ctrl.OpenLibraryEntry(r.Context(), firstName)
	if err != nil {
		if errors.Is(err, ErrNotInLibrary) {
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Person is not in the library")
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	httpx.JSONSuccessWithRequest(r, w, snap, nil)
}

// Forward handles POST /api/session/reader/forward.
func (h *HTTPHandler) Forward(w http.ResponseWriter, r *http.Request) {
	snap, err := h.ctrl.Forward()
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "CONFLICT", "No book is open")
		return
	}
	httpx.JSONSuccessWithRequest(r, w, snap, nil)
}

// Backward handles POST /api/session/reader/backward.
func (h *HTTPHandler) Backward(w http.ResponseWriter, r *http.Request) {
	snap, err := h.ctrl.Backward()
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "CONFLICT", "No book is open")
		return
	}
	httpx.JSONSuccessWithRequest(r, w, snap, nil)
}
