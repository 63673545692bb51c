package handlers

import (
	"net/http"
	"strings"

	"artwork-search-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowHomepage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"query": ""})
}

// SearchPage handles the search form post and renders the merged results.
func (h *Handler) SearchPage(c *gin.Context) {
	query := c.PostForm("search")

	artworks, err := h.searchSvc.Search(c.Request.Context(), query)
	if err != nil {
		logSearchError(c, query, err)
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "artworks.html", gin.H{
		"query":    strings.TrimSpace(query),
		"artworks": dto.ToArtworkResponses(artworks),
	})
}

// NotFound renders the generic error page for unknown routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"query":   "",
		"message": "the page you were looking for does not exist",
	})
}
