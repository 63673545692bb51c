// Package metmuseum adapts the Metropolitan Museum of Art Collection API to
// domain artworks. A search yields object IDs; each object is then fetched
// individually.
package metmuseum

import (
	"context"
	"fmt"
	"net/url"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"artwork-search-service/internal/adapters/secondary/upstream"
	"artwork-search-service/internal/config"
	"artwork-search-service/internal/core/domain"
	ports "artwork-search-service/internal/core/ports/output"
)

const (
	sourceName            = "metmuseum"
	defaultInstitution    = "The Metropolitan Museum of Art"
	defaultMaxConcurrency = 10
)

// Collection API response structures
type searchResponse struct {
	Total     int     `json:"total"`
	ObjectIDs []int64 `json:"objectIDs"`
}

type object struct {
	ObjectID          int64  `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	Repository        string `json:"repository"`
	PrimaryImage      string `json:"primaryImage"`
}

type metClient struct {
	http           *upstream.Client
	maxConcurrency int
}

// NewMetClient creates a new Met collection adapter
func NewMetClient(cfg *config.MetConfig, opts ...upstream.Option) ports.ArtworkSource {
	limit := cfg.MaxConcurrency
	if limit <= 0 {
		limit = defaultMaxConcurrency
	}
	return &metClient{
		http:           upstream.NewClient(sourceName, cfg.URL, cfg.Timeout, opts...),
		maxConcurrency: limit,
	}
}

func (c *metClient) Name() string {
	return c.http.Name()
}

// Search resolves matching object IDs, fetches every object with at most
// maxConcurrency requests in flight and keeps those whose artist matches
// query. Any failed fetch fails the whole search. Results follow ID order.
func (c *metClient) Search(ctx context.Context, query string) ([]domain.Artwork, error) {
	ids, err := c.searchIDs(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Artwork{}, nil
	}

	objects := make([]*object, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			obj, err := c.getObject(gctx, id)
			if err != nil {
				return err
			}
			objects[i] = obj
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	artworks := []domain.Artwork{}
	for _, obj := range objects {
		if !domain.MatchesArtist(obj.ArtistDisplayName, query) {
			continue
		}
		artworks = append(artworks, obj.toArtwork())
	}

	log.WithFields(log.Fields{
		"query":    query,
		"objects":  len(ids),
		"accepted": len(artworks),
	}).Debug("met search filtered")

	return artworks, nil
}

func (c *metClient) searchIDs(ctx context.Context, query string) ([]int64, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("artistOrCulture", "true")

	var resp searchResponse
	if err := c.http.GetJSON(ctx, "/search", params, &resp); err != nil {
		return nil, fmt.Errorf("met search: %w", err)
	}
	return resp.ObjectIDs, nil
}

func (c *metClient) getObject(ctx context.Context, id int64) (*object, error) {
	var obj object
	if err := c.http.GetJSON(ctx, fmt.Sprintf("/objects/%d", id), nil, &obj); err != nil {
		return nil, fmt.Errorf("met object %d: %w", id, err)
	}
	return &obj, nil
}

// toArtwork maps an object; the collection has no description equivalent.
func (o *object) toArtwork() domain.Artwork {
	source := o.Repository
	if source == "" {
		source = defaultInstitution
	}
	return domain.Artwork{
		SourceName:  source,
		ArtistName:  o.ArtistDisplayName,
		Title:       o.Title,
		ImageURL:    domain.OptionalString(o.PrimaryImage),
		Description: nil,
	}
}
