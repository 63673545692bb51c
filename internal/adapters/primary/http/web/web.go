// Package web embeds the HTML templates and static assets of the search UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template. Pages are looked up by file name,
// e.g. "artworks.html"; layout.html contributes the shared header and footer.
func Templates() (*template.Template, error) {
	tpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tpl, nil
}

// Static returns the assets served under /public.
func Static() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("opening static assets: %w", err)
	}
	return sub, nil
}
