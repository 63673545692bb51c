package dto

import (
	"artwork-search-service/internal/core/domain"
)

// ============================================================================
// Response DTOs
// ============================================================================

// ArtworkResponse represents one artwork; absent image or description is null
type ArtworkResponse struct {
	SourceName  string  `json:"source_name"`
	ArtistName  string  `json:"artist_name"`
	Title       string  `json:"title"`
	ImageURL    *string `json:"image_url"`
	Description *string `json:"description"`
}

// SearchResponse represents the aggregated result of one search
type SearchResponse struct {
	Query    string            `json:"query"`
	Count    int               `json:"count"`
	Artworks []ArtworkResponse `json:"artworks"`
}

// ============================================================================
// Mappers
// ============================================================================

func ToArtworkResponse(a domain.Artwork) ArtworkResponse {
	return ArtworkResponse{
		SourceName:  a.SourceName,
		ArtistName:  a.ArtistName,
		Title:       a.Title,
		ImageURL:    a.ImageURL,
		Description: a.Description,
	}
}

func ToArtworkResponses(artworks []domain.Artwork) []ArtworkResponse {
	out := make([]ArtworkResponse, 0, len(artworks))
	for _, a := range artworks {
		out = append(out, ToArtworkResponse(a))
	}
	return out
}

func ToSearchResponse(query string, artworks []domain.Artwork) SearchResponse {
	return SearchResponse{
		Query:    query,
		Count:    len(artworks),
		Artworks: ToArtworkResponses(artworks),
	}
}
