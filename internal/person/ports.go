package person

import (
	"context"
)

// Repository defines the contract for the catalog data source.
type Repository interface {
	List(ctx context.Context) ([]Person, error)
}
