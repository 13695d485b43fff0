package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/RavinduUni/coinpulse/internal/server/views"
)

// Trending serves the most-searched-coins page.
func (h *Handlers) Trending(c *gin.Context) {
	list, err := h.Market.Trending(c.Request.Context())
	if err != nil {
		h.Logger.Error().Err(err).Msg("Failed to fetch trending coins")
		h.renderHTML(c, views.Page("Trending", views.SectionError("Trending Coins", err)))
		return
	}

	h.renderHTML(c, views.Page("Trending", views.Section("Trending Coins", views.TrendingTable(list))))
}
