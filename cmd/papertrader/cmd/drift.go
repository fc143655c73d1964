package cmd

import (
	"fmt"

	"github.com/rustyeddy/papertrader/console"
	"github.com/rustyeddy/papertrader/sim"
	"github.com/spf13/cobra"
)

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Preview random market moves and their effect on the portfolio",
	Long: `Apply one or more drift steps to the configured market and show the
resulting prices and portfolio value. Nothing is written: prices are not
part of the saved portfolio and the trade journal is not opened.

Set market.seed in the config file to make the moves repeatable.`,
	Args: cobra.NoArgs,
	RunE: runDrift,
}

var driftSteps int

func init() {
	rootCmd.AddCommand(driftCmd)
	driftCmd.Flags().IntVarP(&driftSteps, "steps", "n", 1, "number of drift steps")
}

func runDrift(cmd *cobra.Command, args []string) error {
	if driftSteps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	// No journal: a preview must not leave valuation rows behind.
	e, err := sim.NewEngine(cfg, sim.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("start engine: %w", err)
	}

	for i := 0; i < driftSteps; i++ {
		e.Drift()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "After %d drift step(s):\n", driftSteps)
	console.WriteMarket(out, e.Market())
	fmt.Fprintln(out)
	console.WritePortfolio(out, e.Portfolio())
	return nil
}
