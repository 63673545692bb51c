package handlers

import (
	"context"
	"errors"
	"net/http"

	"artwork-search-service/internal/adapters/primary/http/middleware"
	"artwork-search-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// errorStatus maps a search error to an HTTP status and a message safe to show.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "the art collections took too long to respond"

	case domain.IsUpstreamError(err):
		return http.StatusBadGateway, "an art collection is unavailable, please try again later"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func mapDomainError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	c.JSON(status, gin.H{"error": msg})
}

func renderError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	c.HTML(status, "error.html", gin.H{"query": "", "message": msg})
}

func logSearchError(c *gin.Context, query string, err error) {
	entry := log.WithError(err).WithFields(log.Fields{
		"query":      query,
		"request_id": c.GetString(middleware.RequestIDKey),
	})
	if errors.Is(err, domain.ErrInvalidQuery) {
		entry.Warn("search rejected")
		return
	}
	entry.Error("search artworks failed")
}
