package store

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/papertrader/ledger"
	"github.com/shopspring/decimal"
)

const (
	cashPrefix         = "cash,"
	holdingsMarker     = "holdings"
	transactionsMarker = "transactions"
)

// localLayout is the zone-less ISO 8601 form older portfolio files use.
const localLayout = "2006-01-02T15:04:05.999999999"

// Encode writes s in the sectioned portfolio format. Holdings are written
// in symbol order and transactions in log order, so equal states encode to
// equal bytes.
func Encode(w io.Writer, s ledger.State) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s%s\n", cashPrefix, s.Cash.String())

	fmt.Fprintln(bw, holdingsMarker)
	symbols := make([]string, 0, len(s.Holdings))
	for sym := range s.Holdings {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	for _, sym := range symbols {
		fmt.Fprintf(bw, "%s,%d\n", sym, s.Holdings[sym])
	}

	fmt.Fprintln(bw, transactionsMarker)
	for _, t := range s.Transactions {
		fmt.Fprintf(bw, "%s,%s,%d,%s,%s\n",
			t.Time.Format(time.RFC3339Nano), t.Symbol, t.Quantity, t.Price.String(), t.Side)
	}

	return bw.Flush()
}

// SkippedLine is a line Decode ignored because it did not parse.
type SkippedLine struct {
	Line   int
	Text   string
	Reason string
}

// Decoded is the result of Decode: the state plus any lines that were
// skipped while reading it.
type Decoded struct {
	State   ledger.State
	Skipped []SkippedLine
}

type section int

const (
	readingCash section = iota
	readingHoldings
	readingTransactions
)

// Decode reads the portfolio format. Parsing is a three-state machine
// that changes section only on an exact "holdings" or "transactions"
// line. In the cash section only the cash line counts; anything else is
// ignored. Malformed holdings or transaction lines are skipped and
// reported in Decoded.Skipped. A cash line whose amount does not parse is
// a *ParseError.
func Decode(r io.Reader) (Decoded, error) {
	out := Decoded{State: ledger.State{
		Cash:     decimal.Zero,
		Holdings: make(map[string]int),
	}}

	state := readingCash
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.EqualFold(line, holdingsMarker):
			state = readingHoldings
			continue
		case strings.EqualFold(line, transactionsMarker):
			state = readingTransactions
			continue
		}

		switch state {
		case readingCash:
			if !strings.HasPrefix(line, cashPrefix) {
				continue
			}
			cash, err := decimal.NewFromString(strings.TrimSpace(line[len(cashPrefix):]))
			if err != nil {
				return out, &ParseError{Line: n, Text: line, Err: fmt.Errorf("cash: %w", err)}
			}
			out.State.Cash = cash

		case readingHoldings:
			sym, qty, err := parseHolding(line)
			if err != nil {
				out.Skipped = append(out.Skipped, SkippedLine{Line: n, Text: line, Reason: err.Error()})
				continue
			}
			out.State.Holdings[sym] = qty

		case readingTransactions:
			t, err := parseTransaction(line)
			if err != nil {
				out.Skipped = append(out.Skipped, SkippedLine{Line: n, Text: line, Reason: err.Error()})
				continue
			}
			out.State.Transactions = append(out.State.Transactions, t)
		}
	}
	if err := sc.Err(); err != nil {
		return out, err
	}
	return out, nil
}

func parseHolding(line string) (string, int, error) {
	p := strings.Split(line, ",")
	if len(p) != 2 {
		return "", 0, fmt.Errorf("holding: want 2 fields, got %d", len(p))
	}
	sym := strings.TrimSpace(p[0])
	if err := ledger.ValidateSymbol(sym); err != nil {
		return "", 0, fmt.Errorf("holding: %w", err)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(p[1]))
	if err != nil {
		return "", 0, fmt.Errorf("holding: quantity: %w", err)
	}
	if qty <= 0 {
		return "", 0, fmt.Errorf("holding: quantity must be positive, got %d", qty)
	}
	return sym, qty, nil
}

func parseTransaction(line string) (ledger.Transaction, error) {
	p := strings.Split(line, ",")
	if len(p) != 5 {
		return ledger.Transaction{}, fmt.Errorf("transaction: want 5 fields, got %d", len(p))
	}

	ts, err := parseTime(strings.TrimSpace(p[0]))
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("transaction: time: %w", err)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(p[2]))
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("transaction: quantity: %w", err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(p[3]))
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("transaction: price: %w", err)
	}
	side, err := ledger.ParseSide(p[4])
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("transaction: %w", err)
	}

	t := ledger.Transaction{
		Time:     ts,
		Symbol:   strings.TrimSpace(p[1]),
		Quantity: qty,
		Price:    price,
		Side:     side,
	}
	if err := t.Valid(); err != nil {
		return ledger.Transaction{}, fmt.Errorf("transaction: %w", err)
	}
	return t, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localLayout, s, time.Local)
}
