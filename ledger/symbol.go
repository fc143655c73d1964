package ledger

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateSymbol reports whether symbol can be traded and written to the
// portfolio file: it must be non-empty and free of commas and whitespace.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidSymbol)
	}
	if strings.IndexFunc(symbol, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	return nil
}
