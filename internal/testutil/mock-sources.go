package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"artwork-search-service/internal/core/domain"
)

// MockArtworkSource is a mock of ArtworkSource.
type MockArtworkSource struct {
	mock.Mock
	name string
}

// NewMockArtworkSource creates a mock source reporting name.
func NewMockArtworkSource(name string) *MockArtworkSource {
	return &MockArtworkSource{name: name}
}

func (m *MockArtworkSource) Name() string {
	return m.name
}

func (m *MockArtworkSource) Search(ctx context.Context, query string) ([]domain.Artwork, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artwork), args.Error(1)
}

// Artwork builds a record with only the identifying fields set.
func Artwork(source, artist, title string) domain.Artwork {
	return domain.Artwork{
		SourceName: source,
		ArtistName: artist,
		Title:      title,
	}
}
