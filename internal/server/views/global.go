package views

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/RavinduUni/coinpulse/internal/domain"
	"github.com/RavinduUni/coinpulse/pkg/currency"
)

// GlobalStats renders the market-wide aggregate strip above the main table.
func GlobalStats(market domain.GlobalMarket) templ.Component {
	stats := []struct {
		label string
		value string
	}{
		{"Market Cap", currency.FormatCompactUSD(market.TotalMarketCap["usd"])},
		{"24h Volume", currency.FormatCompactUSD(market.TotalVolume["usd"])},
		{"24h Change", currency.FormatPercent(market.MarketCapChangePercentage24h)},
		{"BTC Dominance", fmt.Sprintf("%.1f%%", market.MarketCapPercentage["btc"])},
		{"Active Coins", strconv.Itoa(market.ActiveCryptocurrencies)},
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="stats">`); err != nil {
			return err
		}
		for _, stat := range stats {
			if _, err := fmt.Fprintf(w, `<div class="stat"><span class="stat-label">%s</span><span class="stat-value">%s</span></div>`,
				templ.EscapeString(stat.label), templ.EscapeString(stat.value)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
}
