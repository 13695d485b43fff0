package clients

import (
	"context"

	"github.com/RavinduUni/coinpulse/internal/domain"
)

// TopMarkets lists coins ordered by market cap, one page at a time.
func (c *Client) TopMarkets(ctx context.Context, vsCurrency string, perPage, page int) ([]domain.Coin, error) {
	return Fetch[[]domain.Coin](ctx, c, "/coins/markets", Params{
		"vs_currency": vsCurrency,
		"order":       "market_cap_desc",
		"per_page":    perPage,
		"page":        page,
		"sparkline":   false,
	})
}

// Trending returns the coins most searched for in the last 24 hours.
func (c *Client) Trending(ctx context.Context) (domain.TrendingList, error) {
	return Fetch[domain.TrendingList](ctx, c, "/search/trending", nil)
}

// Global returns market-wide aggregates.
func (c *Client) Global(ctx context.Context) (domain.GlobalData, error) {
	return Fetch[domain.GlobalData](ctx, c, "/global", nil)
}

// Search runs a free-text coin search. An empty query is dropped by the
// encoder, which the upstream answers with its default list.
func (c *Client) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	return Fetch[domain.SearchResult](ctx, c, "/search", Params{
		"query": query,
	})
}
