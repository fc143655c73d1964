package sim

import (
	"github.com/rustyeddy/papertrader/market"
	"github.com/shopspring/decimal"
)

// Position is one holding marked at the current market price.
type Position struct {
	Symbol   string
	Name     string
	Quantity int
	Price    decimal.Decimal
	Value    decimal.Decimal
	// Priced is false when the symbol is no longer listed; Price and Value
	// are then zero.
	Priced bool
}

// Portfolio is the cash balance plus every position, in symbol order.
type Portfolio struct {
	Cash      decimal.Decimal
	Positions []Position
	Total     decimal.Decimal
}

// Portfolio marks the ledger to the current market. Total equals the
// ledger valuation.
func (e *Engine) Portfolio() Portfolio {
	p := Portfolio{Cash: e.ledger.Cash()}
	for _, sym := range e.ledger.Symbols() {
		pos := Position{Symbol: sym, Quantity: e.ledger.Quantity(sym)}
		if s, ok := e.catalog.Get(sym); ok {
			pos.Name = s.Name
			pos.Price = s.Price
			pos.Value = s.Price.Mul(decimal.NewFromInt(int64(pos.Quantity)))
			pos.Priced = true
		}
		p.Positions = append(p.Positions, pos)
	}
	p.Total = e.ledger.Valuation(e.catalog)
	return p
}

// Stock returns the listing for symbol.
func (e *Engine) Stock(symbol string) (market.Stock, bool) {
	return e.catalog.Get(symbol)
}
