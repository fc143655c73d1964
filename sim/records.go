package sim

import (
	"fmt"
	"time"

	"github.com/rustyeddy/papertrader/internal/id"
	"github.com/rustyeddy/papertrader/journal"
	"github.com/rustyeddy/papertrader/ledger"
	"github.com/shopspring/decimal"
)

// TradeID identifies the seq'th transaction of the log. It is derived from
// the transaction itself, so a trade keeps its ID across save and reload and
// matches the journal row written when it executed.
func TradeID(seq int, tx ledger.Transaction) string {
	key := fmt.Sprintf("%d|%s|%s|%d|%s",
		seq, tx.Time.UTC().Format(time.RFC3339Nano), tx.Symbol, tx.Quantity, tx.Price.String())
	return id.Derive(tx.Time, key)
}

func tradeRecord(seq int, tx ledger.Transaction, cashAfter decimal.Decimal) journal.TradeRecord {
	return journal.TradeRecord{
		TradeID:   TradeID(seq, tx),
		Time:      tx.Time,
		Symbol:    tx.Symbol,
		Side:      string(tx.Side),
		Quantity:  tx.Quantity,
		Price:     tx.Price,
		Amount:    tx.Amount(),
		CashAfter: cashAfter,
	}
}

// TradeRecords converts the transaction log to journal records. The cash
// after each trade is worked back from the current balance.
func (e *Engine) TradeRecords() []journal.TradeRecord {
	return tradeRecords(e.ledger.Transactions(), e.ledger.Cash())
}

func tradeRecords(txs []ledger.Transaction, cash decimal.Decimal) []journal.TradeRecord {
	recs := make([]journal.TradeRecord, len(txs))
	after := cash
	for i := len(txs) - 1; i >= 0; i-- {
		recs[i] = tradeRecord(i, txs[i], after)
		after = after.Sub(txs[i].CashFlow())
	}
	return recs
}
