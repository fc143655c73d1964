package market

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/papertrader/ledger"
	"github.com/shopspring/decimal"
)

// Catalog is an ordered price list keyed by symbol. Iteration follows
// insertion order so listings stay stable between drifts.
type Catalog struct {
	stocks []Stock
	index  map[string]int
}

// NewCatalog builds a catalog from stocks. Symbols are normalized to upper
// case; symbols the portfolio file cannot hold, duplicates and
// non-positive prices are rejected.
func NewCatalog(stocks ...Stock) (*Catalog, error) {
	c := &Catalog{
		stocks: make([]Stock, 0, len(stocks)),
		index:  make(map[string]int, len(stocks)),
	}
	for _, s := range stocks {
		s.Symbol = NormalizeSymbol(s.Symbol)
		if err := ledger.ValidateSymbol(s.Symbol); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if !s.Price.IsPositive() {
			return nil, fmt.Errorf("catalog: %s price must be positive, got %s", s.Symbol, s.Price)
		}
		if _, dup := c.index[s.Symbol]; dup {
			return nil, fmt.Errorf("catalog: duplicate symbol %s", s.Symbol)
		}
		c.index[s.Symbol] = len(c.stocks)
		c.stocks = append(c.stocks, s)
	}
	return c, nil
}

// DefaultCatalog returns a catalog of DefaultStocks.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultStocks...)
	if err != nil {
		panic(err)
	}
	return c
}

// NormalizeSymbol trims and upper-cases user input.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Get returns the stock for symbol.
func (c *Catalog) Get(symbol string) (Stock, bool) {
	i, ok := c.index[NormalizeSymbol(symbol)]
	if !ok {
		return Stock{}, false
	}
	return c.stocks[i], true
}

// Lookup returns the current price of symbol.
func (c *Catalog) Lookup(symbol string) (decimal.Decimal, bool) {
	s, ok := c.Get(symbol)
	return s.Price, ok
}

// Stocks returns a copy of the listing in catalog order.
func (c *Catalog) Stocks() []Stock {
	out := make([]Stock, len(c.stocks))
	copy(out, c.stocks)
	return out
}

func (c *Catalog) Len() int { return len(c.stocks) }

func (c *Catalog) clone() *Catalog {
	out := &Catalog{
		stocks: c.Stocks(),
		index:  make(map[string]int, len(c.index)),
	}
	for k, v := range c.index {
		out.index[k] = v
	}
	return out
}
