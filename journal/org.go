package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block for pasting
// into a trading diary. Facts go in the PROPERTIES drawer; the Notes
// heading is left for the reader.
func FormatTradeOrg(t TradeRecord) string {
	heading := fmt.Sprintf("** %s %d %s (%s)", t.Side, abs(t.Quantity), t.Symbol, shortID(t.TradeID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.TradeID))
	b.WriteString(fmt.Sprintf(":TIME: %s\n", t.Time.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", t.Symbol))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", t.Side))
	b.WriteString(fmt.Sprintf(":QUANTITY: %d\n", t.Quantity))
	b.WriteString(fmt.Sprintf(":PRICE: %s\n", t.Price.StringFixed(2)))
	b.WriteString(fmt.Sprintf(":AMOUNT: %s\n", t.Amount.StringFixed(2)))
	b.WriteString(fmt.Sprintf(":CASH_AFTER: %s\n", t.CashAfter.StringFixed(2)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Notes\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
