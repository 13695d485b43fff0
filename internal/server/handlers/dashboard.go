package handlers

import (
	"sync"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/RavinduUni/coinpulse/internal/domain"
	"github.com/RavinduUni/coinpulse/internal/server/views"
)

const marketsPerPage = 50

// Dashboard serves the landing page: a global-stats strip and the top-markets
// table. The two upstream fetches run concurrently and fail independently; a
// broken section renders its own error state while the other still shows data.
func (h *Handlers) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		wg sync.WaitGroup

		global    domain.GlobalData
		globalErr error

		coins    []domain.Coin
		coinsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		global, globalErr = h.Market.Global(ctx)
	}()
	go func() {
		defer wg.Done()
		coins, coinsErr = h.Market.TopMarkets(ctx, "usd", marketsPerPage, 1)
	}()
	wg.Wait()

	var overview templ.Component
	if globalErr != nil {
		h.Logger.Error().Err(globalErr).Msg("Failed to fetch global market data")
		overview = views.SectionError("Market Overview", globalErr)
	} else {
		overview = views.Section("Market Overview", views.GlobalStats(global.Data))
	}

	var markets templ.Component
	if coinsErr != nil {
		h.Logger.Error().Err(coinsErr).Msg("Failed to fetch market listing")
		markets = views.SectionError("Top Markets", coinsErr)
	} else {
		markets = views.Section("Top Markets", views.MarketTable(coins))
	}

	h.renderHTML(c, views.Page("Markets", overview, markets))
}
