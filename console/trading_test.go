package console

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rustyeddy/papertrader/config"
	"github.com/rustyeddy/papertrader/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedDraw float64

func (f fixedDraw) Float64() float64 { return float64(f) }

func newTestEngine(t *testing.T, storePath string, draw float64) *sim.Engine {
	t.Helper()
	cfg := config.Default()
	cfg.Store.Path = storePath
	clock := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e, err := sim.NewEngine(cfg,
		sim.WithRandom(fixedDraw(draw)),
		sim.WithClock(func() time.Time { return clock }),
	)
	require.NoError(t, err)
	return e
}

func runShell(t *testing.T, e *sim.Engine, script string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, NewShell(&out, strings.NewReader(script), e).Run())
	return out.String()
}

func TestShellBuyAndPortfolio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.csv")
	e := newTestEngine(t, path, 0.5)

	out := runShell(t, e, "2\ninfy\n2\n4\n5\n7\n")

	assert.Contains(t, out, "Bought 2 INFY @ 1400.00. New cash: 7200.00")
	assert.Contains(t, out, "Cash: 7200.00")
	assert.Contains(t, out, "INFY: 2 shares | Price: 1400.00 | Value: 2800.00")
	assert.Contains(t, out, "Total portfolio value (cash + holdings): 10000.00")
	assert.Contains(t, out, "2024-03-01 10:00:00 | BUY 2 @ 1400.00 | INFY")
	assert.Contains(t, out, "Saved portfolio to "+path)
	assert.True(t, strings.HasSuffix(out, "Exiting. Goodbye!\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFY,2")
}

func TestShellRejections(t *testing.T) {
	e := newTestEngine(t, filepath.Join(t.TempDir(), "portfolio.csv"), 0.5)

	script := strings.Join([]string{
		"2", "XYZ",
		"2", "INFY", "abc",
		"2", "INFY", "0",
		"2", "INFY", "100",
		"3", "TCS",
		"2", "ICIC", "3",
		"3", "ICIC", "5",
		"9",
		"7",
	}, "\n") + "\n"
	out := runShell(t, e, script)

	assert.Contains(t, out, "Unknown symbol.")
	assert.Contains(t, out, "Invalid number.")
	assert.Contains(t, out, "Quantity must be > 0.")
	assert.Contains(t, out, "Insufficient cash. Need 140000.00 but have 10000.00")
	assert.Contains(t, out, "You don't own any shares of TCS")
	assert.Contains(t, out, "Cannot sell more than you own. Owned: 3")
	assert.Contains(t, out, "Invalid choice.")
	assert.Equal(t, 3, e.Ledger().Quantity("ICIC"))
}

func TestShellSellAll(t *testing.T) {
	e := newTestEngine(t, filepath.Join(t.TempDir(), "portfolio.csv"), 0.5)

	out := runShell(t, e, "2\nHDFC\n4\n3\nhdfc\n4\n4\n7\n")

	assert.Contains(t, out, "Sold 4 HDFC @ 1500.00. New cash: 10000.00")
	assert.Contains(t, out, "No holdings.")
}

func TestShellDriftAndMarket(t *testing.T) {
	e := newTestEngine(t, filepath.Join(t.TempDir(), "portfolio.csv"), 0)

	out := runShell(t, e, "1\n6\n7\n")

	assert.Contains(t, out, "INFY | Infosys Ltd | Price: 1400.00")
	assert.Contains(t, out, "Simulating market movement...")

	_, after, found := strings.Cut(out, "Market updated.\n")
	require.True(t, found)
	assert.Contains(t, after, "-- Market --")
	assert.Contains(t, after, "INFY | Infosys Ltd | Price: 1330.00")
	assert.Contains(t, after, "ICIC | ICICI Bank | Price: 950.00")
}

func TestShellEmptyHistory(t *testing.T) {
	e := newTestEngine(t, filepath.Join(t.TempDir(), "portfolio.csv"), 0.5)

	out := runShell(t, e, "5\n7\n")
	assert.Contains(t, out, "No transactions.")
}

func TestShellSavesOnEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.csv")
	e := newTestEngine(t, path, 0.5)

	out := runShell(t, e, "2\nTCS\n1")

	assert.Contains(t, out, "Bought 1 TCS @ 3200.00. New cash: 6800.00")
	assert.Contains(t, out, "Saved portfolio to "+path)

	reloaded := newTestEngine(t, path, 0.5)
	assert.Equal(t, 1, reloaded.Ledger().Quantity("TCS"))
}

func TestShellReportsSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "portfolio.csv")
	e := newTestEngine(t, path, 0.5)

	out := runShell(t, e, "7\n")

	assert.Contains(t, out, "Failed to save portfolio:")
	assert.Contains(t, out, "Exiting. Goodbye!")
}

func TestShellReportsLoadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.csv")
	require.NoError(t, os.WriteFile(path, []byte("cash,lots\n"), 0o644))
	e := newTestEngine(t, path, 0.5)

	out := runShell(t, e, "4\n")

	assert.Contains(t, out, "Failed to load portfolio:")
	assert.Contains(t, out, "Cash: 10000.00")
}
