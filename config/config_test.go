package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "INR", cfg.Account.Currency)
	assert.Equal(t, 10000.0, cfg.Account.StartingCash)
	assert.Len(t, cfg.Market.Stocks, 5)
	assert.Equal(t, 0.05, cfg.Market.MaxDrift)
	assert.NoError(t, cfg.Validate())

	cat, err := cfg.Catalog()
	require.NoError(t, err)
	p, ok := cat.Lookup("INFY")
	require.True(t, ok)
	assert.Equal(t, "1400", p.String())
	assert.Equal(t, "10000", cfg.StartingCash().String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:   "missing currency",
			mutate: func(c *Config) { c.Account.Currency = "" },
			errMsg: "account.currency is required",
		},
		{
			name:   "negative starting cash",
			mutate: func(c *Config) { c.Account.StartingCash = -1 },
			errMsg: "account.starting_cash must not be negative",
		},
		{
			name:   "no stocks",
			mutate: func(c *Config) { c.Market.Stocks = nil },
			errMsg: "market.stocks must list at least one stock",
		},
		{
			name: "duplicate stock",
			mutate: func(c *Config) {
				c.Market.Stocks = append(c.Market.Stocks, StockConfig{Symbol: "infy", Price: 1})
			},
			errMsg: "duplicate symbol INFY",
		},
		{
			name:   "symbol with comma",
			mutate: func(c *Config) { c.Market.Stocks[0].Symbol = "A,B" },
			errMsg: "invalid symbol",
		},
		{
			name:   "zero price",
			mutate: func(c *Config) { c.Market.Stocks[0].Price = 0 },
			errMsg: "price must be positive",
		},
		{
			name:   "drift too wide",
			mutate: func(c *Config) { c.Market.MaxDrift = 1.5 },
			errMsg: "market.max_drift must be between 0 and 1",
		},
		{
			name:   "zero min price",
			mutate: func(c *Config) { c.Market.MinPrice = 0 },
			errMsg: "market.min_price must be positive",
		},
		{
			name:   "empty store path",
			mutate: func(c *Config) { c.Store.Path = "" },
			errMsg: "store.path is required",
		},
		{
			name:   "csv journal without files",
			mutate: func(c *Config) { c.Journal.Type = "csv" },
			errMsg: "journal trades_file and valuations_file required",
		},
		{
			name:   "sqlite journal without db",
			mutate: func(c *Config) { c.Journal.Type = "sqlite" },
			errMsg: "journal db_path required",
		},
		{
			name:   "unknown journal",
			mutate: func(c *Config) { c.Journal.Type = "postgres" },
			errMsg: "journal.type must be",
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			errMsg: "logging.level must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Account.StartingCash = 2500.5
			cfg.Journal = JournalConfig{Type: "sqlite", DBPath: "journal.db"}
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg.Account, loaded.Account)
			assert.Equal(t, cfg.Market.Stocks, loaded.Market.Stocks)
			assert.Equal(t, cfg.Journal, loaded.Journal)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  currency: USD\n  starting_cash: 500\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, 500.0, cfg.Account.StartingCash)
	assert.Len(t, cfg.Market.Stocks, 5)
	assert.Equal(t, "portfolio.csv", cfg.Store.Path)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("market:\n  min_price: -1\n"), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
