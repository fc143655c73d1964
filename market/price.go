package market

import "github.com/shopspring/decimal"

// DisplayPlaces is the number of decimals used when printing money.
const DisplayPlaces = 2

// Format renders an amount for display. Ledger values are never rounded;
// this is presentation only.
func Format(d decimal.Decimal) string {
	return d.StringFixed(DisplayPlaces)
}
