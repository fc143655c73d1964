package ledger

import "errors"

// Trade rejections. Every one leaves the ledger unchanged; callers test
// with errors.Is since the returned errors carry context.
var (
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrUnknownSymbol      = errors.New("unknown symbol")
	ErrInvalidSymbol      = errors.New("invalid symbol")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoHoldings         = errors.New("no holdings")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// IsRejection reports whether err is one of the recoverable trade errors.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrInvalidQuantity,
		ErrInvalidPrice,
		ErrUnknownSymbol,
		ErrInvalidSymbol,
		ErrInsufficientFunds,
		ErrNoHoldings,
		ErrInsufficientShares,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
