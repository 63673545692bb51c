package ports

import (
	"context"

	"artwork-search-service/internal/core/domain"
)

// ArtworkSource defines the contract for an art collection provider
type ArtworkSource interface {
	// Name identifies the provider in logs and errors
	Name() string

	// Search returns the provider's artworks whose artist matches query.
	// An empty result is not an error.
	Search(ctx context.Context, query string) ([]domain.Artwork, error)
}
