package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/papertrader/market"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config is the complete papertrader configuration.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Market  MarketConfig  `json:"market" yaml:"market"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// AccountConfig sets up a fresh ledger when no saved portfolio exists.
type AccountConfig struct {
	Currency     string  `json:"currency" yaml:"currency"`
	StartingCash float64 `json:"starting_cash" yaml:"starting_cash"`
}

// StockConfig is one entry of the simulated market.
type StockConfig struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Name   string  `json:"name" yaml:"name"`
	Price  float64 `json:"price" yaml:"price"`
}

// MarketConfig describes the price list and how it drifts.
type MarketConfig struct {
	Stocks []StockConfig `json:"stocks" yaml:"stocks"`
	// MaxDrift is the largest move per drift step, as a fraction.
	MaxDrift float64 `json:"max_drift" yaml:"max_drift"`
	MinPrice float64 `json:"min_price" yaml:"min_price"`
	// Seed fixes the drift sequence; 0 seeds from the clock.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// StoreConfig locates the saved portfolio.
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type           string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile     string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	ValuationsFile string `json:"valuations_file,omitempty" yaml:"valuations_file,omitempty"`
	DBPath         string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoggingConfig controls the diagnostic log. With no File the log goes to
// stderr.
type LoggingConfig struct {
	Level      string `json:"level" yaml:"level"`
	File       string `json:"file,omitempty" yaml:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
	MaxAgeDays int    `json:"max_age_days,omitempty" yaml:"max_age_days,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.StartingCash < 0 {
		return fmt.Errorf("account.starting_cash must not be negative")
	}
	if len(c.Market.Stocks) == 0 {
		return fmt.Errorf("market.stocks must list at least one stock")
	}
	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("market.stocks: %w", err)
	}
	if c.Market.MaxDrift < 0 || c.Market.MaxDrift >= 1 {
		return fmt.Errorf("market.max_drift must be between 0 and 1")
	}
	if c.Market.MinPrice <= 0 {
		return fmt.Errorf("market.min_price must be positive")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.ValuationsFile == "" {
			return fmt.Errorf("journal trades_file and valuations_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

// Catalog builds the market price list from the configured stocks.
func (c *Config) Catalog() (*market.Catalog, error) {
	stocks := make([]market.Stock, 0, len(c.Market.Stocks))
	for _, s := range c.Market.Stocks {
		stocks = append(stocks, market.Stock{
			Symbol: s.Symbol,
			Name:   s.Name,
			Price:  decimal.NewFromFloat(s.Price),
		})
	}
	return market.NewCatalog(stocks...)
}

// StartingCash returns the opening balance as a decimal.
func (c *Config) StartingCash() decimal.Decimal {
	return decimal.NewFromFloat(c.Account.StartingCash)
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	stocks := make([]StockConfig, 0, len(market.DefaultStocks))
	for _, s := range market.DefaultStocks {
		p, _ := s.Price.Float64()
		stocks = append(stocks, StockConfig{Symbol: s.Symbol, Name: s.Name, Price: p})
	}

	return &Config{
		Account: AccountConfig{
			Currency:     "INR",
			StartingCash: 10000,
		},
		Market: MarketConfig{
			Stocks:   stocks,
			MaxDrift: market.DefaultMaxDrift,
			MinPrice: market.DefaultMinPrice,
		},
		Store: StoreConfig{
			Path: "portfolio.csv",
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}
