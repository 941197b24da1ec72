package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"biodeck/internal/book"
	"biodeck/internal/config"
	"biodeck/internal/httpx"
	"biodeck/internal/person"
	"biodeck/internal/platform/bookshelf"
	"biodeck/internal/session"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	personService := person.NewService(person.NewYAMLRepo(cfg.CatalogPath))

	persons, err := personService.List(context.Background())
	if err != nil {
		// A missing catalog means an empty deck, not a dead server.
		log.Printf("catalog load failed, starting with an empty deck: %v", err)
		persons = nil
	}

	shelf := bookshelf.NewClient(cfg.BookshelfURL, cfg.BookshelfUserAgent, cfg.BookshelfRPS, cfg.BookshelfRetries)
	bookService := book.NewService(shelf)

	controller := session.NewController(persons, bookService, session.Config{
		DesiredAge: cfg.DesiredAge,
		PageSize:   cfg.ReaderPageSize,
		Seed:       cfg.DeckSeed,
	})

	handler := httpx.Chain(newRouter(personService, bookService, controller),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(1<<20),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s deck_size=%d", cfg.Addr, len(persons))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func newRouter(persons *person.Service, books *book.Service, controller *session.Controller) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /api/persons", person.NewHTTPHandler(persons).List)
	mux.HandleFunc("GET /api/book/{index}", book.NewHTTPHandler(books, persons).Get)
	session.NewHTTPHandler(controller).Register(mux)

	return mux
}
