package journal

import (
	"fmt"

	"github.com/rustyeddy/papertrader/config"
)

// FromConfig opens the journal backend named by c.Type. An empty type or
// "none" yields Nop.
func FromConfig(c config.JournalConfig) (Journal, error) {
	switch c.Type {
	case "", "none":
		return Nop{}, nil
	case "csv":
		return NewCSV(c.TradesFile, c.ValuationsFile)
	case "sqlite":
		return NewSQLite(c.DBPath)
	}
	return nil, fmt.Errorf("unknown journal type %q", c.Type)
}
