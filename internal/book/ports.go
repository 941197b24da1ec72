package book

import (
	"context"
)

// Source defines the contract for the upstream book provider, keyed by the
// person's catalog position.
type Source interface {
	BookFor(ctx context.Context, personIndex int) (Book, error)
}
