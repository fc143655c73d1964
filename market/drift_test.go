package market

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource replays draws in order and repeats the last one.
type fixedSource struct {
	draws []float64
	i     int
}

func (f *fixedSource) Float64() float64 {
	v := f.draws[f.i]
	if f.i < len(f.draws)-1 {
		f.i++
	}
	return v
}

func mustCatalog(t *testing.T, stocks ...Stock) *Catalog {
	t.Helper()
	c, err := NewCatalog(stocks...)
	require.NoError(t, err)
	return c
}

func TestDriftBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		draw float64
		want string
	}{
		{"lowest draw is -5%", 0.0, "950.00"},
		{"middle draw is flat", 0.5, "1000.00"},
		{"upper quarter draw is +2.5%", 0.75, "1025.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := mustCatalog(t, Stock{Symbol: "AAA", Name: "A", Price: decimal.NewFromInt(1000)})
			out := NewDrifter(&fixedSource{draws: []float64{tt.draw}}).Apply(c)
			got, ok := out.Lookup("AAA")
			require.True(t, ok)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestDriftFloorsAtMinPrice(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t,
		Stock{Symbol: "PENNY", Name: "Penny", Price: decimal.NewFromFloat(1.01)},
		Stock{Symbol: "ONE", Name: "One", Price: decimal.NewFromInt(1)},
	)
	d := NewDrifter(&fixedSource{draws: []float64{0}})

	for i := 0; i < 50; i++ {
		c = d.Apply(c)
		for _, s := range c.Stocks() {
			assert.True(t, s.Price.GreaterThanOrEqual(decimal.NewFromInt(1)), "%s fell to %s", s.Symbol, s.Price)
		}
	}
	p, _ := c.Lookup("PENNY")
	assert.True(t, p.Equal(decimal.NewFromInt(1)))
}

func TestDriftNeverBelowFloorRandom(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	d := NewDrifter(rand.New(rand.NewSource(42)), WithMaxPercent(0.5))
	for i := 0; i < 500; i++ {
		c = d.Apply(c)
		for _, s := range c.Stocks() {
			require.True(t, s.Price.GreaterThanOrEqual(decimal.NewFromInt(1)))
		}
	}
}

func TestDriftIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a := NewDrifter(rand.New(rand.NewSource(7))).Apply(DefaultCatalog())
	b := NewDrifter(rand.New(rand.NewSource(7))).Apply(DefaultCatalog())
	assert.Equal(t, a.Stocks(), b.Stocks())
}

func TestDriftLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	before := c.Stocks()
	_ = NewDrifter(&fixedSource{draws: []float64{0}}).Apply(c)
	assert.Equal(t, before, c.Stocks())
}

func TestWithMinPrice(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t, Stock{Symbol: "AAA", Price: decimal.NewFromInt(10)})
	out := NewDrifter(&fixedSource{draws: []float64{0}}, WithMinPrice(decimal.NewFromInt(19))).Apply(c)
	p, _ := out.Lookup("AAA")
	assert.Equal(t, "19", p.String())
}
