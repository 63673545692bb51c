// Package smithsonian adapts the Smithsonian Open Access art & design search
// to domain artworks.
package smithsonian

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"

	"artwork-search-service/internal/adapters/secondary/upstream"
	"artwork-search-service/internal/config"
	"artwork-search-service/internal/core/domain"
	ports "artwork-search-service/internal/core/ports/output"
)

const (
	sourceName         = "smithsonian"
	defaultInstitution = "Smithsonian Institution"
	searchPath         = "/category/art_design/search"
)

type smithsonianClient struct {
	http   *upstream.Client
	apiKey string
	rows   int
}

// NewSmithsonianClient creates a new Smithsonian Open Access adapter
func NewSmithsonianClient(cfg *config.SmithsonianConfig, opts ...upstream.Option) ports.ArtworkSource {
	if cfg.APIKey == "" {
		log.Warn("SMITHSONIAN_APIKEY is empty; Smithsonian searches will be rejected upstream")
	}
	return &smithsonianClient{
		http:   upstream.NewClient(sourceName, cfg.URL, cfg.Timeout, opts...),
		apiKey: cfg.APIKey,
		rows:   cfg.Rows,
	}
}

func (c *smithsonianClient) Name() string {
	return c.http.Name()
}

// Search queries the art & design category and keeps rows whose artist
// name contains query. The provider cannot search by artist alone.
func (c *smithsonianClient) Search(ctx context.Context, query string) ([]domain.Artwork, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	if c.rows > 0 {
		params.Set("rows", strconv.Itoa(c.rows))
	}

	var resp searchResponse
	if err := c.http.GetJSON(ctx, searchPath, params, &resp); err != nil {
		return nil, fmt.Errorf("smithsonian search: %w", err)
	}

	artworks := []domain.Artwork{}
	if resp.Response == nil {
		return artworks, nil
	}

	for _, r := range resp.Response.Rows {
		artist := r.artistName()
		if !domain.MatchesArtist(artist, query) {
			continue
		}
		artworks = append(artworks, r.toArtwork(artist))
	}

	log.WithFields(log.Fields{
		"query":    query,
		"rows":     len(resp.Response.Rows),
		"accepted": len(artworks),
	}).Debug("smithsonian search filtered")

	return artworks, nil
}

func (r row) toArtwork(artist string) domain.Artwork {
	source := r.dataSource()
	if source == "" {
		source = defaultInstitution
	}
	return domain.Artwork{
		SourceName:  source,
		ArtistName:  artist,
		Title:       r.Title,
		ImageURL:    domain.OptionalString(r.thumbnail()),
		Description: domain.OptionalString(r.firstNote()),
	}
}
