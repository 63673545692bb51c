package handlers

import (
	"net/http"

	"artwork-search-service/internal/adapters/primary/http/web"
	"artwork-search-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	searchSvc *services.SearchService
}

func New(searchSvc *services.SearchService) *Handler {
	return &Handler{
		searchSvc: searchSvc,
	}
}

// RegisterRoutes registers the JSON API.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search", h.SearchArtworks)
}

// RegisterPages installs templates, static assets, the HTML pages and the
// catch-all error page on the engine.
func (h *Handler) RegisterPages(r *gin.Engine) error {
	tpl, err := web.Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tpl)

	static, err := web.Static()
	if err != nil {
		return err
	}
	r.StaticFS("/public", http.FS(static))

	r.GET("/", h.ShowHomepage)
	r.POST("/searches", h.SearchPage)
	r.NoRoute(h.NotFound)

	return nil
}
