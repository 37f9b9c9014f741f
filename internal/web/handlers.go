package web

import (
	"net/http"
	"strings"

	"github.com/Kitware/vtk-mcp/internal/config"
	"github.com/Kitware/vtk-mcp/internal/errors"
	"github.com/Kitware/vtk-mcp/internal/format"
	"github.com/Kitware/vtk-mcp/internal/scraper"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	scraper  *scraper.Scraper
	cfg      *config.Config
	renderer *Renderer
}

// HandleSearch handles GET /classes: the search form plus results for ?q=.
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	data := SearchPageData{
		PageData: PageData{
			Title:   "VTK Classes",
			Version: h.renderer.version,
			Nav:     "classes",
		},
		Query:    query,
		HasQuery: query != "",
	}

	if query == "" {
		h.renderer.renderPage(w, "search", data)
		return
	}

	matches, err := h.scraper.Search(r.Context(), query)
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	data.Matches = matches
	h.renderer.renderPage(w, "search", data)
}

// HandleDetail handles GET /classes/{name}, one class's documentation.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		h.renderer.renderError(w, errors.NewInvalidRequest("class name is required"))
		return
	}

	rec, err := h.scraper.Lookup(r.Context(), name)
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	rendered := renderMarkdown(format.ClassMarkdown(rec))

	h.renderer.renderPage(w, "detail", DetailPageData{
		PageData: PageData{
			Title:   rec.ClassName,
			Version: h.renderer.version,
			Nav:     "classes",
		},
		Record:       rec,
		RenderedHTML: rendered,
	})
}
