// market/instruments.go
package market

import "github.com/shopspring/decimal"

// Stock is a tradable instrument in the simulated market.
type Stock struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
}

// DefaultStocks is the market the simulator starts with when no
// configuration overrides it.
var DefaultStocks = []Stock{
	{Symbol: "INFY", Name: "Infosys Ltd", Price: decimal.NewFromInt(1400)},
	{Symbol: "TCS", Name: "Tata Consultancy", Price: decimal.NewFromInt(3200)},
	{Symbol: "RELI", Name: "Reliance Industries", Price: decimal.NewFromInt(2900)},
	{Symbol: "HDFC", Name: "HDFC Bank", Price: decimal.NewFromInt(1500)},
	{Symbol: "ICIC", Name: "ICICI Bank", Price: decimal.NewFromInt(1000)},
}
