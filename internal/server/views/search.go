package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/RavinduUni/coinpulse/internal/domain"
	"github.com/RavinduUni/coinpulse/internal/render"
)

// SearchTable renders free-text search results.
func SearchTable(result domain.SearchResult) templ.Component {
	cols := []render.Column[domain.SearchCoin]{
		{
			Header: render.Text("Coin"),
			Cell: func(c domain.SearchCoin) templ.Component {
				return coinLabel(c.Thumb, c.Name, c.Symbol)
			},
		},
		{
			Header:      render.Text("Rank"),
			HeaderClass: "num",
			CellClass:   "num",
			Cell: func(c domain.SearchCoin) templ.Component {
				if c.MarketCapRank <= 0 {
					return render.Text("—")
				}
				return render.Text(strconv.Itoa(c.MarketCapRank))
			},
		},
	}

	return render.Table(result.Coins, cols, func(c domain.SearchCoin) string { return c.ID })
}
