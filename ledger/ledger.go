package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PriceLookup resolves the current price of a symbol. *market.Catalog
// satisfies it.
type PriceLookup interface {
	Lookup(symbol string) (decimal.Decimal, bool)
}

// State is the persistable content of a ledger.
type State struct {
	Cash         decimal.Decimal
	Holdings     map[string]int
	Transactions []Transaction
}

// Result is returned by a successful trade.
type Result struct {
	Cash        decimal.Decimal
	Transaction Transaction
}

// Ledger tracks cash, share holdings and the transaction log. It is not
// safe for concurrent use.
type Ledger struct {
	cash     decimal.Decimal
	holdings map[string]int
	log      *Log

	// opening cash and log length at construction or restore, for Reconcile
	openingCash decimal.Decimal
	openingLen  int

	now func() time.Time
}

// Option customizes a Ledger.
type Option func(*Ledger)

// WithClock sets the time source used to stamp transactions.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// New returns an empty ledger holding cash.
func New(cash decimal.Decimal, opts ...Option) *Ledger {
	l := &Ledger{
		cash:        cash,
		holdings:    make(map[string]int),
		log:         NewLog(),
		openingCash: cash,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Restore rebuilds a ledger from persisted state. Holdings with a
// non-positive quantity are dropped.
func Restore(s State, opts ...Option) *Ledger {
	l := New(s.Cash, opts...)
	for sym, q := range s.Holdings {
		if q > 0 {
			l.holdings[sym] = q
		}
	}
	l.log = NewLog(s.Transactions...)
	l.openingLen = l.log.Len()
	return l
}

// State returns a copy of the ledger content.
func (l *Ledger) State() State {
	return State{
		Cash:         l.cash,
		Holdings:     l.Holdings(),
		Transactions: l.log.All(),
	}
}

func (l *Ledger) Cash() decimal.Decimal { return l.cash }

// Holdings returns a copy of the symbol to quantity mapping.
func (l *Ledger) Holdings() map[string]int {
	out := make(map[string]int, len(l.holdings))
	for k, v := range l.holdings {
		out[k] = v
	}
	return out
}

// Quantity returns the shares held of symbol, 0 when none.
func (l *Ledger) Quantity(symbol string) int { return l.holdings[symbol] }

// Symbols returns the held symbols in sorted order.
func (l *Ledger) Symbols() []string {
	out := make([]string, 0, len(l.holdings))
	for k := range l.holdings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Transactions returns a copy of the log in execution order.
func (l *Ledger) Transactions() []Transaction { return l.log.All() }

// Log exposes the transaction log for read access.
func (l *Ledger) Log() *Log { return l.log }

// Buy purchases quantity shares of symbol at price.
func (l *Ledger) Buy(symbol string, quantity int, price decimal.Decimal) (Result, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return Result{}, fmt.Errorf("buy: %w", err)
	}
	if quantity <= 0 {
		return Result{}, fmt.Errorf("buy %s: %w: %d", symbol, ErrInvalidQuantity, quantity)
	}
	if !price.IsPositive() {
		return Result{}, fmt.Errorf("buy %s: %w: %s", symbol, ErrInvalidPrice, price)
	}

	cost := price.Mul(decimal.NewFromInt(int64(quantity)))
	if cost.GreaterThan(l.cash) {
		return Result{}, fmt.Errorf("buy %s: %w: need %s but have %s",
			symbol, ErrInsufficientFunds, cost.StringFixed(2), l.cash.StringFixed(2))
	}

	l.cash = l.cash.Sub(cost)
	l.holdings[symbol] += quantity
	return l.record(symbol, quantity, price, Buy), nil
}

// Sell disposes of quantity shares of symbol at price.
func (l *Ledger) Sell(symbol string, quantity int, price decimal.Decimal) (Result, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return Result{}, fmt.Errorf("sell: %w", err)
	}
	if quantity <= 0 {
		return Result{}, fmt.Errorf("sell %s: %w: %d", symbol, ErrInvalidQuantity, quantity)
	}
	if !price.IsPositive() {
		return Result{}, fmt.Errorf("sell %s: %w: %s", symbol, ErrInvalidPrice, price)
	}

	owned := l.holdings[symbol]
	if owned == 0 {
		return Result{}, fmt.Errorf("sell %s: %w", symbol, ErrNoHoldings)
	}
	if quantity > owned {
		return Result{}, fmt.Errorf("sell %s: %w: owned %d, requested %d",
			symbol, ErrInsufficientShares, owned, quantity)
	}

	l.cash = l.cash.Add(price.Mul(decimal.NewFromInt(int64(quantity))))
	if owned == quantity {
		delete(l.holdings, symbol)
	} else {
		l.holdings[symbol] = owned - quantity
	}
	return l.record(symbol, -quantity, price, Sell), nil
}

// BuyAt buys at the price prices currently quotes for symbol.
func (l *Ledger) BuyAt(prices PriceLookup, symbol string, quantity int) (Result, error) {
	price, ok := prices.Lookup(symbol)
	if !ok {
		return Result{}, fmt.Errorf("buy %s: %w", symbol, ErrUnknownSymbol)
	}
	return l.Buy(symbol, quantity, price)
}

// SellAt sells at the price prices currently quotes for symbol.
func (l *Ledger) SellAt(prices PriceLookup, symbol string, quantity int) (Result, error) {
	price, ok := prices.Lookup(symbol)
	if !ok {
		return Result{}, fmt.Errorf("sell %s: %w", symbol, ErrUnknownSymbol)
	}
	return l.Sell(symbol, quantity, price)
}

// Valuation is cash plus every holding marked at its current price.
// Holdings without a price count as zero.
func (l *Ledger) Valuation(prices PriceLookup) decimal.Decimal {
	total := l.cash
	for sym, q := range l.holdings {
		if p, ok := prices.Lookup(sym); ok {
			total = total.Add(p.Mul(decimal.NewFromInt(int64(q))))
		}
	}
	return total
}

// Reconcile checks that cash moved by exactly the cash flow of the
// transactions executed since the ledger was created or restored.
func (l *Ledger) Reconcile() error {
	want := l.openingCash.Add(l.log.CashFlow(l.openingLen))
	if !want.Equal(l.cash) {
		return fmt.Errorf("reconcile: cash %s, expected %s from %d transactions",
			l.cash, want, l.log.Len()-l.openingLen)
	}
	return nil
}

func (l *Ledger) record(symbol string, qty int, price decimal.Decimal, side Side) Result {
	t := Transaction{
		Time:     l.now().Round(0),
		Symbol:   symbol,
		Quantity: qty,
		Price:    price,
		Side:     side,
	}
	l.log.Append(t)
	return Result{Cash: l.cash, Transaction: t}
}
