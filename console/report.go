package console

import (
	"fmt"
	"io"

	"github.com/rustyeddy/papertrader/ledger"
	"github.com/rustyeddy/papertrader/market"
	"github.com/rustyeddy/papertrader/sim"
)

// WriteMarket prints one line per listed stock.
func WriteMarket(w io.Writer, stocks []market.Stock) {
	for _, st := range stocks {
		fmt.Fprintf(w, "%s | %s | Price: %s\n", st.Symbol, st.Name, market.Format(st.Price))
	}
}

// WritePortfolio prints cash, each holding marked to market and the total.
// A cash-only portfolio prints the cash line and "No holdings." with no
// total line.
func WritePortfolio(w io.Writer, pf sim.Portfolio) {
	fmt.Fprintf(w, "Cash: %s\n", market.Format(pf.Cash))
	if len(pf.Positions) == 0 {
		fmt.Fprintln(w, "No holdings.")
		return
	}
	fmt.Fprintln(w, "Holdings:")
	for _, pos := range pf.Positions {
		if !pos.Priced {
			fmt.Fprintf(w, "%s: %d shares | not listed\n", pos.Symbol, pos.Quantity)
			continue
		}
		fmt.Fprintf(w, "%s: %d shares | Price: %s | Value: %s\n",
			pos.Symbol, pos.Quantity, market.Format(pos.Price), market.Format(pos.Value))
	}
	fmt.Fprintf(w, "Total portfolio value (cash + holdings): %s\n", market.Format(pf.Total))
}

// WriteHistory prints the transaction log oldest first.
func WriteHistory(w io.Writer, txs []ledger.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(w, "No transactions.")
		return
	}
	for _, tx := range txs {
		fmt.Fprintln(w, tx.String())
	}
}
