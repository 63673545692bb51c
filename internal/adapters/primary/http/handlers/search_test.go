package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"artwork-search-service/internal/adapters/primary/http/dto"
	"artwork-search-service/internal/core/domain"
	"artwork-search-service/internal/core/services"
	"artwork-search-service/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSearchRouter(t *testing.T) (*testutil.MockArtworkSource, *testutil.MockArtworkSource, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a := testutil.NewMockArtworkSource("smithsonian")
	b := testutil.NewMockArtworkSource("metmuseum")
	svc := services.NewSearchService(time.Second, a, b)

	h := New(svc)
	r := gin.New()
	require.NoError(t, h.RegisterPages(r))
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)

	return a, b, r
}

func monetFixtures() ([]domain.Artwork, []domain.Artwork) {
	thumb := "https://ids.si.edu/thumb/1"
	note := "Painted at Giverny."
	a := []domain.Artwork{{
		SourceName:  "Smithsonian American Art Museum",
		ArtistName:  "Claude Monet",
		Title:       "Water Lilies",
		ImageURL:    &thumb,
		Description: &note,
	}}
	b := []domain.Artwork{testutil.Artwork("Metropolitan Museum of Art", "Claude Monet", "Haystacks")}
	return a, b
}

// ============================================================================
// JSON API
// ============================================================================

func TestSearchArtworks(t *testing.T) {
	a, b, r := setupSearchRouter(t)
	aResults, bResults := monetFixtures()
	a.On("Search", mock.Anything, "claude monet").Return(aResults, nil)
	b.On("Search", mock.Anything, "claude monet").Return(bResults, nil)

	req, _ := http.NewRequest("GET", "/api/v1/search?q="+url.QueryEscape(" claude monet "), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "claude monet", resp.Query)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Artworks, 2)
	assert.Equal(t, "Water Lilies", resp.Artworks[0].Title)
	assert.Equal(t, "Haystacks", resp.Artworks[1].Title)
	assert.Nil(t, resp.Artworks[1].ImageURL)
	assert.Nil(t, resp.Artworks[1].Description)
}

func TestSearchArtworks_MissingQuery(t *testing.T) {
	_, _, r := setupSearchRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/search", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrInvalidQuery.Error())
}

func TestSearchArtworks_UpstreamFailure(t *testing.T) {
	a, b, r := setupSearchRouter(t)
	aResults, _ := monetFixtures()
	a.On("Search", mock.Anything, "monet").Return(aResults, nil)
	b.On("Search", mock.Anything, "monet").
		Return(nil, fmt.Errorf("met object 1: %w", domain.ErrUpstreamStatus))

	req, _ := http.NewRequest("GET", "/api/v1/search?q=monet", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	// partial results are never returned
	assert.NotContains(t, w.Body.String(), "Water Lilies")
	assert.NotContains(t, w.Body.String(), "met object 1")
}

// ============================================================================
// HTML pages
// ============================================================================

func TestShowHomepage(t *testing.T) {
	_, _, r := setupSearchRouter(t)

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/searches"`)
	assert.Contains(t, w.Body.String(), `name="search"`)
}

func TestSearchPage(t *testing.T) {
	a, b, r := setupSearchRouter(t)
	aResults, bResults := monetFixtures()
	a.On("Search", mock.Anything, "monet").Return(aResults, nil)
	b.On("Search", mock.Anything, "monet").Return(bResults, nil)

	form := url.Values{"search": {"monet"}}
	req, _ := http.NewRequest("POST", "/searches", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Water Lilies")
	assert.Contains(t, body, "Haystacks")
	assert.Contains(t, body, `src="https://ids.si.edu/thumb/1"`)
	assert.Contains(t, body, "Painted at Giverny.")
	assert.Equal(t, 1, strings.Count(body, "<img"))
	assert.Less(t, strings.Index(body, "Water Lilies"), strings.Index(body, "Haystacks"))
}

func TestSearchPage_NoResults(t *testing.T) {
	a, b, r := setupSearchRouter(t)
	a.On("Search", mock.Anything, "nobody").Return([]domain.Artwork{}, nil)
	b.On("Search", mock.Anything, "nobody").Return([]domain.Artwork{}, nil)

	form := url.Values{"search": {"nobody"}}
	req, _ := http.NewRequest("POST", "/searches", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No artworks found.")
}

func TestSearchPage_UpstreamFailureRendersErrorPage(t *testing.T) {
	a, b, r := setupSearchRouter(t)
	a.On("Search", mock.Anything, "monet").
		Return(nil, fmt.Errorf("smithsonian search: %w", domain.ErrUpstreamRequest))
	b.On("Search", mock.Anything, "monet").Return([]domain.Artwork{}, nil).Maybe()

	form := url.Values{"search": {"monet"}}
	req, _ := http.NewRequest("POST", "/searches", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
	assert.NotContains(t, w.Body.String(), "smithsonian search")
}

func TestSearchPage_BlankQuery(t *testing.T) {
	_, _, r := setupSearchRouter(t)

	form := url.Values{"search": {"   "}}
	req, _ := http.NewRequest("POST", "/searches", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotFound(t *testing.T) {
	_, _, r := setupSearchRouter(t)

	req, _ := http.NewRequest("GET", "/no/such/page", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
}

func TestStaticAssets(t *testing.T) {
	_, _, r := setupSearchRouter(t)

	req, _ := http.NewRequest("GET", "/public/styles/base.css", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".artworks")
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid query", err: domain.ErrInvalidQuery, want: http.StatusBadRequest},
		{name: "upstream status", err: fmt.Errorf("x: %w", domain.ErrUpstreamStatus), want: http.StatusBadGateway},
		{name: "upstream decode", err: domain.ErrUpstreamResponse, want: http.StatusBadGateway},
		{name: "deadline", err: fmt.Errorf("%w: %w", context.DeadlineExceeded, domain.ErrUpstreamRequest), want: http.StatusGatewayTimeout},
		{name: "unknown", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := errorStatus(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, msg)
		})
	}
}
