package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/RavinduUni/coinpulse/internal/domain"
	"github.com/RavinduUni/coinpulse/internal/render"
	"github.com/RavinduUni/coinpulse/pkg/currency"
)

// MarketTable renders the top-markets listing.
func MarketTable(coins []domain.Coin) templ.Component {
	cols := []render.Column[domain.Coin]{
		{
			Header:      render.Text("#"),
			HeaderClass: "num",
			CellClass:   "num",
			Cell: func(c domain.Coin) templ.Component {
				return render.Textf("%d", c.MarketCapRank)
			},
		},
		{
			Header: render.Text("Coin"),
			Cell: func(c domain.Coin) templ.Component {
				return coinLabel(c.Image, c.Name, c.Symbol)
			},
		},
		{
			Header:      render.Text("Price"),
			HeaderClass: "num",
			CellClass:   "num",
			Cell: func(c domain.Coin) templ.Component {
				return render.Text(currency.FormatUSD(c.CurrentPrice))
			},
		},
		{
			Header:      render.Text("24h"),
			HeaderClass: "num",
			CellClass:   "num",
			Cell: func(c domain.Coin) templ.Component {
				return changeBadge(c.PriceChangePercentage24h)
			},
		},
		{
			Header:      render.Text("Market Cap"),
			HeaderClass: "num",
			CellClass:   "num",
			Cell: func(c domain.Coin) templ.Component {
				return render.Text(currency.FormatCompactUSD(c.MarketCap))
			},
		},
		{
			Header:      render.Text("Volume (24h)"),
			HeaderClass: "num",
			CellClass:   "num",
			Cell: func(c domain.Coin) templ.Component {
				return render.Text(currency.FormatCompactUSD(c.TotalVolume))
			},
		},
		{
			Header:      render.Text("Circulating Supply"),
			HeaderClass: "num",
			CellClass:   "num",
			Cell: func(c domain.Coin) templ.Component {
				return render.Text(currency.FormatSupply(c.CirculatingSupply))
			},
		},
	}

	return render.Table(coins, cols, func(c domain.Coin) string { return c.ID })
}

// coinLabel pairs the coin icon with its name and ticker.
func coinLabel(image, name, symbol string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if image != "" {
			if _, err := fmt.Fprintf(w, `<img class="coin-icon" src="%s" alt="" width="20" height="20">`, templ.EscapeString(image)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<span class="coin-name">%s</span> <span class="coin-symbol">%s</span>`,
			templ.EscapeString(name), templ.EscapeString(symbol))
		return err
	})
}

// changeBadge colors a 24h percentage move by direction.
func changeBadge(pct float64) templ.Component {
	class := "change-up"
	if pct < 0 {
		class = "change-down"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<span class="%s">%s</span>`, class, templ.EscapeString(currency.FormatPercent(pct)))
		return err
	})
}
