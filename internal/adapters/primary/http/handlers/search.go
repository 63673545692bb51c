package handlers

import (
	"net/http"
	"strings"

	"artwork-search-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SearchArtworks(c *gin.Context) {
	query := c.Query("q")

	artworks, err := h.searchSvc.Search(c.Request.Context(), query)
	if err != nil {
		logSearchError(c, query, err)
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResponse(strings.TrimSpace(query), artworks))
}
