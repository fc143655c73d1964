package market

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	require.Equal(t, 5, c.Len())

	symbols := make([]string, 0, c.Len())
	for _, s := range c.Stocks() {
		symbols = append(symbols, s.Symbol)
	}
	assert.Equal(t, []string{"INFY", "TCS", "RELI", "HDFC", "ICIC"}, symbols)

	p, ok := c.Lookup("infy")
	require.True(t, ok)
	assert.Equal(t, "1400.00", Format(p))
}

func TestNewCatalogRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stocks []Stock
		errMsg string
	}{
		{
			name:   "empty symbol",
			stocks: []Stock{{Symbol: "  ", Price: decimal.NewFromInt(1)}},
			errMsg: "empty symbol",
		},
		{
			name:   "comma in symbol",
			stocks: []Stock{{Symbol: "A,B", Price: decimal.NewFromInt(1)}},
			errMsg: "invalid symbol",
		},
		{
			name:   "inner whitespace",
			stocks: []Stock{{Symbol: "RE LI", Price: decimal.NewFromInt(1)}},
			errMsg: "invalid symbol",
		},
		{
			name:   "zero price",
			stocks: []Stock{{Symbol: "AAA", Price: decimal.Zero}},
			errMsg: "price must be positive",
		},
		{
			name: "duplicate after normalizing",
			stocks: []Stock{
				{Symbol: "aaa", Price: decimal.NewFromInt(1)},
				{Symbol: "AAA", Price: decimal.NewFromInt(2)},
			},
			errMsg: "duplicate symbol AAA",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewCatalog(tt.stocks...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCatalogGetUnknown(t *testing.T) {
	t.Parallel()

	_, ok := DefaultCatalog().Get("NOPE")
	assert.False(t, ok)
}

func TestStocksReturnsCopy(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	s := c.Stocks()
	s[0].Price = decimal.NewFromInt(1)

	p, _ := c.Lookup(s[0].Symbol)
	assert.Equal(t, "1400", p.String())
}
