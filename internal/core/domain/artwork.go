package domain

import "strings"

// Artwork is one piece of art normalized from any upstream collection.
// ImageURL and Description are nil when the source provides no value.
type Artwork struct {
	SourceName  string  `json:"source_name"`
	ArtistName  string  `json:"artist_name"`
	Title       string  `json:"title"`
	ImageURL    *string `json:"image_url"`
	Description *string `json:"description"`
}

// MatchesArtist reports whether artistName contains query, ignoring case.
// An absent artist name never matches a non-empty query.
func MatchesArtist(artistName, query string) bool {
	if artistName == "" {
		return query == ""
	}
	return strings.Contains(strings.ToLower(artistName), strings.ToLower(query))
}

// OptionalString returns nil for an empty string.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
