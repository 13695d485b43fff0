package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RavinduUni/coinpulse/internal/server/views"
)

// Search serves free-text coin search. An empty query still renders the page,
// with whatever default list the upstream returns.
func (h *Handlers) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	result, err := h.Market.Search(c.Request.Context(), query)
	if err != nil {
		h.Logger.Error().Err(err).Str("query", query).Msg("Failed to run coin search")
		h.renderHTML(c, views.Page("Search", views.SectionError("Search Results", err)))
		return
	}

	title := "Search Results"
	if query != "" {
		title = "Results for “" + query + "”"
	}

	h.renderHTML(c, views.Page("Search", views.Section(title, views.SearchTable(result))))
}
