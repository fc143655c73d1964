package cmd

import (
	"github.com/rustyeddy/papertrader/console"
	"github.com/spf13/cobra"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Show the market listing",
	Args:  cobra.NoArgs,
	RunE:  runMarket,
}

func init() {
	rootCmd.AddCommand(marketCmd)
}

func runMarket(cmd *cobra.Command, args []string) error {
	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}
	console.WriteMarket(cmd.OutOrStdout(), cat.Stocks())
	return nil
}
