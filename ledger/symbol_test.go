package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		symbol string
		ok     bool
	}{
		{"plain", "INFY", true},
		{"dotted", "BRK.B", true},
		{"empty", "", false},
		{"comma", "A,B", false},
		{"padded", " PAD ", false},
		{"inner space", "A B", false},
		{"tab", "A\tB", false},
		{"newline", "A\nB", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateSymbol(tt.symbol)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSymbol)
			assert.True(t, IsRejection(err))
		})
	}
}
