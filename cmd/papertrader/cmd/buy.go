package cmd

import (
	"fmt"
	"strconv"

	"github.com/rustyeddy/papertrader/ledger"
	"github.com/rustyeddy/papertrader/market"
	"github.com/rustyeddy/papertrader/sim"
	"github.com/spf13/cobra"
)

var buyCmd = &cobra.Command{
	Use:   "buy SYMBOL QTY",
	Short: "Buy shares at the current price and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTradeOnce(cmd, args, (*sim.Engine).Buy, "Bought")
	},
}

var sellCmd = &cobra.Command{
	Use:   "sell SYMBOL QTY",
	Short: "Sell shares at the current price and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTradeOnce(cmd, args, (*sim.Engine).Sell, "Sold")
	},
}

func init() {
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(sellCmd)
}

type tradeFunc func(e *sim.Engine, symbol string, qty int) (ledger.Result, error)

// runTradeOnce loads the portfolio, executes one trade and saves. A
// portfolio that failed to load is never overwritten.
func runTradeOnce(cmd *cobra.Command, args []string, trade tradeFunc, verb string) error {
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("quantity %q: %w", args[1], ledger.ErrInvalidQuantity)
	}

	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()
	if err := e.LoadErr(); err != nil {
		return err
	}

	res, err := trade(e, args[0], qty)
	if err != nil {
		return err
	}
	if err := e.Save(); err != nil {
		return err
	}

	tx := res.Transaction
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s @ %s. New cash: %s\n",
		verb, tx.Shares(), tx.Symbol, market.Format(tx.Price), market.Format(res.Cash))
	return nil
}
