package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var (
	tradeHeader     = []string{"trade_id", "time", "symbol", "side", "quantity", "price", "amount", "cash_after"}
	valuationHeader = []string{"time", "cash", "holdings", "total", "reason"}
)

// CSVJournal appends trades and valuations to two CSV files. Existing
// files are appended to; the header is written only to new files.
type CSVJournal struct {
	trades     *csv.Writer
	valuations *csv.Writer
	tf, vf     *os.File
}

func NewCSV(tradesPath, valuationsPath string) (*CSVJournal, error) {
	tf, tw, err := openCSV(tradesPath, tradeHeader)
	if err != nil {
		return nil, err
	}
	vf, vw, err := openCSV(valuationsPath, valuationHeader)
	if err != nil {
		tf.Close()
		return nil, err
	}
	return &CSVJournal{trades: tw, valuations: vw, tf: tf, vf: vf}, nil
}

func openCSV(path string, header []string) (*os.File, *csv.Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	w := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, nil, err
		}
	}
	return f, w, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.TradeID,
		t.Time.UTC().Format(time.RFC3339Nano),
		t.Symbol,
		t.Side,
		strconv.Itoa(t.Quantity),
		t.Price.String(),
		t.Amount.String(),
		t.CashAfter.String(),
	})
	if err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordValuation(v ValuationSnapshot) error {
	err := j.valuations.Write([]string{
		v.Time.UTC().Format(time.RFC3339Nano),
		v.Cash.String(),
		v.Holdings.String(),
		v.Total.String(),
		v.Reason,
	})
	if err != nil {
		return err
	}
	j.valuations.Flush()
	return j.valuations.Error()
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	j.valuations.Flush()
	if err := j.valuations.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.vf.Close()
}
