package cmd

import (
	"github.com/rustyeddy/papertrader/console"
	"github.com/spf13/cobra"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Start the interactive trading menu",
	Long: `Load the saved portfolio and trade from a numbered menu.

Choosing Save & Exit, or closing input, writes the portfolio back to the
store file.`,
	Args: cobra.NoArgs,
	RunE: runTrade,
}

func init() {
	rootCmd.AddCommand(tradeCmd)
}

func runTrade(cmd *cobra.Command, args []string) error {
	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	return console.NewShell(cmd.OutOrStdout(), cmd.InOrStdin(), e).Run()
}
