package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Side tags a transaction as a purchase or a sale.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide accepts BUY or SELL in any case.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToUpper(strings.TrimSpace(s))) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}

// Transaction is an executed trade. Quantity is signed: positive for a buy,
// negative for a sell.
type Transaction struct {
	Time     time.Time
	Symbol   string
	Quantity int
	Price    decimal.Decimal
	Side     Side
}

// Shares is the unsigned share count.
func (t Transaction) Shares() int {
	if t.Quantity < 0 {
		return -t.Quantity
	}
	return t.Quantity
}

// Amount is the gross value of the trade, always non-negative.
func (t Transaction) Amount() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(t.Shares())))
}

// CashFlow is the change the trade made to cash: negative for buys.
func (t Transaction) CashFlow() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(-t.Quantity)))
}

// Valid reports whether t satisfies the transaction invariants.
func (t Transaction) Valid() error {
	if err := ValidateSymbol(t.Symbol); err != nil {
		return err
	}
	if t.Quantity == 0 {
		return fmt.Errorf("%w: zero quantity", ErrInvalidQuantity)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, t.Price)
	}
	switch t.Side {
	case Buy:
		if t.Quantity < 0 {
			return fmt.Errorf("%w: BUY with quantity %d", ErrInvalidQuantity, t.Quantity)
		}
	case Sell:
		if t.Quantity > 0 {
			return fmt.Errorf("%w: SELL with quantity %d", ErrInvalidQuantity, t.Quantity)
		}
	default:
		return fmt.Errorf("unknown side %q", t.Side)
	}
	return nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s | %s %d @ %s | %s",
		t.Time.Format("2006-01-02 15:04:05"), t.Side, t.Shares(), t.Price.StringFixed(2), t.Symbol)
}

// Log is the append-only, ordered record of executed trades.
type Log struct {
	txs []Transaction
}

// NewLog returns a log holding a copy of txs.
func NewLog(txs ...Transaction) *Log {
	l := &Log{txs: make([]Transaction, 0, len(txs))}
	l.txs = append(l.txs, txs...)
	return l
}

func (l *Log) Append(t Transaction) { l.txs = append(l.txs, t) }

func (l *Log) Len() int { return len(l.txs) }

// All returns a copy of every transaction in execution order.
func (l *Log) All() []Transaction {
	out := make([]Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Since returns a copy of the transactions appended at or after index i.
func (l *Log) Since(i int) []Transaction {
	if i < 0 {
		i = 0
	}
	if i >= len(l.txs) {
		return nil
	}
	out := make([]Transaction, len(l.txs)-i)
	copy(out, l.txs[i:])
	return out
}

// ForSymbol returns the transactions for one symbol.
func (l *Log) ForSymbol(symbol string) []Transaction {
	var out []Transaction
	for _, t := range l.txs {
		if t.Symbol == symbol {
			out = append(out, t)
		}
	}
	return out
}

// CashFlow sums the cash effect of the transactions from index i on.
func (l *Log) CashFlow(i int) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range l.Since(i) {
		sum = sum.Add(t.CashFlow())
	}
	return sum
}
