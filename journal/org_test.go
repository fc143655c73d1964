package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	trade := TradeRecord{
		TradeID:   "01HV4Z6J8Q2X3Y4Z5A6B7C8D9E",
		Time:      time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC),
		Symbol:    "RELI",
		Side:      "SELL",
		Quantity:  -4,
		Price:     d("2900"),
		Amount:    d("11600"),
		CashAfter: d("21600.5"),
	}

	result := FormatTradeOrg(trade)

	assert.Contains(t, result, "** SELL 4 RELI (01HV4Z6J)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":TRADE_ID: 01HV4Z6J8Q2X3Y4Z5A6B7C8D9E")
	assert.Contains(t, result, ":TIME: 2024-03-15T10:30:45Z")
	assert.Contains(t, result, ":QUANTITY: -4")
	assert.Contains(t, result, ":PRICE: 2900.00")
	assert.Contains(t, result, ":AMOUNT: 11600.00")
	assert.Contains(t, result, ":CASH_AFTER: 21600.50")
	assert.Contains(t, result, ":END:")
	assert.Contains(t, result, "*** Notes")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	trades := []TradeRecord{
		{TradeID: "short", Symbol: "A", Side: "BUY", Quantity: 1},
		{TradeID: "other", Symbol: "B", Side: "BUY", Quantity: 2},
	}

	result := FormatTradesOrg(trades)
	assert.Equal(t, 2, strings.Count(result, ":PROPERTIES:"))
	assert.Contains(t, result, "(short)")
	assert.Contains(t, result, "\n\n\n** BUY 2 B")

	assert.Empty(t, FormatTradesOrg(nil))
}
