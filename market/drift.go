package market

import (
	"github.com/shopspring/decimal"
)

const (
	// DefaultMaxDrift bounds a single drift step to +/-5%.
	DefaultMaxDrift = 0.05
	// DefaultMinPrice is the floor a drifted price never falls below.
	DefaultMinPrice = 1.0
	// PricePlaces is the precision drifted prices are kept at.
	PricePlaces = 4
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Drifter applies bounded random percentage moves to a catalog.
type Drifter struct {
	rng      RandomSource
	maxPct   float64
	minPrice decimal.Decimal
}

// DriftOption customizes a Drifter.
type DriftOption func(*Drifter)

// WithMaxPercent sets the largest absolute move, as a fraction (0.05 = 5%).
func WithMaxPercent(p float64) DriftOption {
	return func(d *Drifter) {
		if p >= 0 {
			d.maxPct = p
		}
	}
}

// WithMinPrice sets the price floor.
func WithMinPrice(p decimal.Decimal) DriftOption {
	return func(d *Drifter) {
		if p.IsPositive() {
			d.minPrice = p
		}
	}
}

// NewDrifter returns a Drifter that draws from rng.
func NewDrifter(rng RandomSource, opts ...DriftOption) *Drifter {
	d := &Drifter{
		rng:      rng,
		maxPct:   DefaultMaxDrift,
		minPrice: decimal.NewFromFloat(DefaultMinPrice),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Apply returns a new catalog with every price moved by a uniform draw in
// [-max, +max] and floored at the minimum price. c is left untouched.
func (d *Drifter) Apply(c *Catalog) *Catalog {
	out := c.clone()
	for i := range out.stocks {
		pct := d.rng.Float64()*2*d.maxPct - d.maxPct
		factor := decimal.NewFromFloat(1 + pct)
		moved := out.stocks[i].Price.Mul(factor).Round(PricePlaces)
		out.stocks[i].Price = decimal.Max(d.minPrice, moved)
	}
	return out
}
