package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"artwork-search-service/internal/core/domain"
	ports "artwork-search-service/internal/core/ports/output"
)

// SearchService aggregates artworks from every configured collection
type SearchService struct {
	sources []ports.ArtworkSource
	timeout time.Duration
}

// NewSearchService creates a new search service. Results are concatenated
// in the order sources are given.
func NewSearchService(timeout time.Duration, sources ...ports.ArtworkSource) *SearchService {
	return &SearchService{
		sources: sources,
		timeout: timeout,
	}
}

// Search normalizes query, runs every source concurrently and concatenates
// their results by source precedence. A failure in any source fails the
// whole search; partial results are never returned.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.Artwork, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidQuery
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	results := make([][]domain.Artwork, len(s.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		g.Go(func() error {
			artworks, err := src.Search(gctx, query)
			if err != nil {
				return fmt.Errorf("search %s: %w", src.Name(), err)
			}
			results[i] = artworks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Surface the search deadline rather than whichever source noticed it.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ctxErr, err)
		}
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}

	artworks := make([]domain.Artwork, 0, total)
	fields := log.Fields{"query": query}
	for i, r := range results {
		fields["count_"+s.sources[i].Name()] = len(r)
		artworks = append(artworks, r...)
	}
	fields["total"] = total
	log.WithFields(fields).Info("search completed")

	return artworks, nil
}
