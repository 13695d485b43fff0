package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/RavinduUni/coinpulse/internal/domain"
	"github.com/RavinduUni/coinpulse/internal/render"
)

// TrendingTable renders the most-searched coins list.
func TrendingTable(list domain.TrendingList) templ.Component {
	cols := []render.Column[domain.TrendingCoin]{
		{
			Header:      render.Text("Rank"),
			HeaderClass: "num",
			CellClass:   "num",
			Cell: func(c domain.TrendingCoin) templ.Component {
				if c.Item.MarketCapRank <= 0 {
					return render.Text("—")
				}
				return render.Text(strconv.Itoa(c.Item.MarketCapRank))
			},
		},
		{
			Header: render.Text("Coin"),
			Cell: func(c domain.TrendingCoin) templ.Component {
				return coinLabel(c.Item.Thumb, c.Item.Name, c.Item.Symbol)
			},
		},
		{
			Header:      render.Text("Price (BTC)"),
			HeaderClass: "num",
			CellClass:   "num",
			Cell: func(c domain.TrendingCoin) templ.Component {
				return render.Textf("%.10f", c.Item.PriceBTC)
			},
		},
	}

	return render.Table(list.Coins, cols, func(c domain.TrendingCoin) string { return c.Item.ID })
}
