// journal/journal.go
package journal

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeRecord is the audit entry written for every executed trade.
type TradeRecord struct {
	TradeID   string
	Time      time.Time
	Symbol    string
	Side      string // BUY or SELL
	Quantity  int    // signed, as in the transaction log
	Price     decimal.Decimal
	Amount    decimal.Decimal // gross value, always positive
	CashAfter decimal.Decimal
}

// ValuationSnapshot captures the portfolio value at a point in time,
// typically after a trade or a market drift.
type ValuationSnapshot struct {
	Time     time.Time
	Cash     decimal.Decimal
	Holdings decimal.Decimal // market value of all positions
	Total    decimal.Decimal
	Reason   string
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordValuation(ValuationSnapshot) error
	Close() error
}

// Nop discards everything. It is the journal used when none is configured.
type Nop struct{}

func (Nop) RecordTrade(TradeRecord) error           { return nil }
func (Nop) RecordValuation(ValuationSnapshot) error { return nil }
func (Nop) Close() error                            { return nil }
