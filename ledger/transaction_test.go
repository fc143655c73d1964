package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{"buy", Transaction{Symbol: "AAA", Quantity: 2, Price: d("1"), Side: Buy}, nil},
		{"sell", Transaction{Symbol: "AAA", Quantity: -2, Price: d("1"), Side: Sell}, nil},
		{"zero qty", Transaction{Symbol: "AAA", Quantity: 0, Price: d("1"), Side: Buy}, ErrInvalidQuantity},
		{"zero price", Transaction{Symbol: "AAA", Quantity: 1, Price: decimal.Zero, Side: Buy}, ErrInvalidPrice},
		{"negative buy", Transaction{Symbol: "AAA", Quantity: -1, Price: d("1"), Side: Buy}, ErrInvalidQuantity},
		{"positive sell", Transaction{Symbol: "AAA", Quantity: 1, Price: d("1"), Side: Sell}, ErrInvalidQuantity},
		{"empty symbol", Transaction{Quantity: 1, Price: d("1"), Side: Buy}, ErrInvalidSymbol},
		{"comma in symbol", Transaction{Symbol: "A,B", Quantity: 1, Price: d("1"), Side: Buy}, ErrInvalidSymbol},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.tx.Valid()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Error(t, Transaction{Symbol: "AAA", Quantity: 1, Price: d("1"), Side: "HOLD"}.Valid())
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	s, err := ParseSide(" sell ")
	require.NoError(t, err)
	assert.Equal(t, Sell, s)

	_, err = ParseSide("short")
	assert.Error(t, err)
}

func TestTransactionString(t *testing.T) {
	t.Parallel()

	tx := Transaction{
		Time:     time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
		Symbol:   "TCS",
		Quantity: -3,
		Price:    d("3200.5"),
		Side:     Sell,
	}
	assert.Equal(t, "2024-05-06 07:08:09 | SELL 3 @ 3200.50 | TCS", tx.String())
	assert.True(t, tx.Amount().Equal(d("9601.5")))
	assert.True(t, tx.CashFlow().Equal(d("9601.5")))
}

func TestLog(t *testing.T) {
	t.Parallel()

	l := NewLog()
	l.Append(Transaction{Symbol: "A", Quantity: 2, Price: d("5"), Side: Buy})
	l.Append(Transaction{Symbol: "B", Quantity: 1, Price: d("7"), Side: Buy})
	l.Append(Transaction{Symbol: "A", Quantity: -1, Price: d("6"), Side: Sell})

	assert.Equal(t, 3, l.Len())
	assert.Len(t, l.ForSymbol("A"), 2)
	assert.Len(t, l.Since(1), 2)
	assert.Nil(t, l.Since(3))
	assert.True(t, l.CashFlow(0).Equal(d("-11")))
	assert.True(t, l.CashFlow(2).Equal(d("6")))
}
