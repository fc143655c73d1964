package cmd

import (
	"fmt"

	"github.com/rustyeddy/papertrader/console"
	"github.com/spf13/cobra"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Show cash, holdings and total value",
	Args:  cobra.NoArgs,
	RunE:  runPortfolio,
}

func init() {
	rootCmd.AddCommand(portfolioCmd)
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()
	if err := e.LoadErr(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Currency: %s\n", e.Currency())
	console.WritePortfolio(out, e.Portfolio())
	return nil
}
