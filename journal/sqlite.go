package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite journals into a sqlite3 database. Amounts are stored as decimal
// text so nothing is lost to float conversion.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, time, symbol, side, quantity, price, amount, cash_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Time.UTC(), t.Symbol, t.Side, t.Quantity,
		t.Price, t.Amount, t.CashAfter,
	)
	return err
}

func (j *SQLite) RecordValuation(v ValuationSnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO valuations
		(time, cash, holdings, total, reason)
		VALUES (?, ?, ?, ?, ?)`,
		v.Time.UTC(), v.Cash, v.Holdings, v.Total, v.Reason,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
