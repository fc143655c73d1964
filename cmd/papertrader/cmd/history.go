package cmd

import (
	"fmt"

	"github.com/rustyeddy/papertrader/console"
	"github.com/rustyeddy/papertrader/journal"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the transaction history",
	Long: `Print every recorded trade, oldest first.

With --org each trade is rendered as an Org-mode entry for a trading diary.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyOrg bool

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyOrg, "org", false, "render trades as Org-mode entries")
}

func runHistory(cmd *cobra.Command, args []string) error {
	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()
	if err := e.LoadErr(); err != nil {
		return err
	}

	txs := e.History()
	if !historyOrg {
		console.WriteHistory(cmd.OutOrStdout(), txs)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradesOrg(e.TradeRecords()))
	return nil
}
