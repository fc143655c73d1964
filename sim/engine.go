package sim

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/rustyeddy/papertrader/config"
	"github.com/rustyeddy/papertrader/internal/logging"
	"github.com/rustyeddy/papertrader/journal"
	"github.com/rustyeddy/papertrader/ledger"
	"github.com/rustyeddy/papertrader/market"
	"github.com/rustyeddy/papertrader/store"
	"github.com/shopspring/decimal"
)

// Engine owns one trading session: the market, the ledger, the saved
// portfolio and the journal. It is single threaded; callers run one
// operation at a time.
type Engine struct {
	currency string
	catalog  *market.Catalog
	drifter  *market.Drifter
	ledger   *ledger.Ledger
	store    *store.FileStore
	journal  journal.Journal
	log      *slog.Logger
	now      func() time.Time
	rng      market.RandomSource

	loadErr error
	skipped []store.SkippedLine
}

// Option customizes an Engine.
type Option func(*Engine)

// WithJournal records trades and valuations to j.
func WithJournal(j journal.Journal) Option {
	return func(e *Engine) { e.journal = j }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithClock sets the time source for transactions and journal entries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRandom sets the source drift draws from.
func WithRandom(r market.RandomSource) Option {
	return func(e *Engine) { e.rng = r }
}

// NewEngine builds the market from cfg and loads the saved portfolio if
// there is one. A portfolio that fails to load is logged and kept in
// LoadErr; the session then starts from the configured starting cash.
func NewEngine(cfg *config.Config, opts ...Option) (*Engine, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		currency: cfg.Account.Currency,
		catalog:  cat,
		store:    store.NewFileStore(cfg.Store.Path),
		journal:  journal.Nop{},
		log:      logging.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := cfg.Market.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
	e.drifter = market.NewDrifter(e.rng,
		market.WithMaxPercent(cfg.Market.MaxDrift),
		market.WithMinPrice(decimal.NewFromFloat(cfg.Market.MinPrice)),
	)

	e.load(cfg.StartingCash())
	return e, nil
}

func (e *Engine) load(startingCash decimal.Decimal) {
	dec, ok, err := e.store.Load()
	switch {
	case err != nil:
		e.loadErr = err
		e.log.Error("load portfolio failed, starting fresh", "path", e.store.Path, "err", err)
		e.ledger = ledger.New(startingCash, ledger.WithClock(e.now))
	case !ok:
		e.log.Info("no saved portfolio, starting fresh", "path", e.store.Path, "cash", startingCash.String())
		e.ledger = ledger.New(startingCash, ledger.WithClock(e.now))
	default:
		e.skipped = dec.Skipped
		for _, s := range dec.Skipped {
			e.log.Warn("skipped portfolio line", "path", e.store.Path, "line", s.Line, "reason", s.Reason)
		}
		e.ledger = ledger.Restore(dec.State, ledger.WithClock(e.now))
		e.log.Info("loaded portfolio",
			"path", e.store.Path,
			"cash", dec.State.Cash.String(),
			"holdings", len(dec.State.Holdings),
			"transactions", len(dec.State.Transactions))
	}
}

// LoadErr is the error hit while loading the saved portfolio, if any.
func (e *Engine) LoadErr() error { return e.loadErr }

// Skipped lists saved portfolio lines that were ignored on load.
func (e *Engine) Skipped() []store.SkippedLine { return e.skipped }

// StorePath is where the portfolio is loaded from and saved to.
func (e *Engine) StorePath() string { return e.store.Path }

func (e *Engine) Currency() string { return e.currency }

func (e *Engine) Catalog() *market.Catalog { return e.catalog }

func (e *Engine) Ledger() *ledger.Ledger { return e.ledger }

// Market returns the current listing.
func (e *Engine) Market() []market.Stock { return e.catalog.Stocks() }

// History returns the transaction log, oldest first.
func (e *Engine) History() []ledger.Transaction { return e.ledger.Transactions() }

// Buy purchases qty shares of symbol at the current market price.
func (e *Engine) Buy(symbol string, qty int) (ledger.Result, error) {
	sym := market.NormalizeSymbol(symbol)
	res, err := e.ledger.BuyAt(e.catalog, sym, qty)
	if err != nil {
		e.log.Info("buy rejected", "symbol", sym, "qty", qty, "err", err)
		return res, err
	}
	e.afterTrade(res)
	return res, nil
}

// Sell disposes of qty shares of symbol at the current market price.
func (e *Engine) Sell(symbol string, qty int) (ledger.Result, error) {
	sym := market.NormalizeSymbol(symbol)
	res, err := e.ledger.SellAt(e.catalog, sym, qty)
	if err != nil {
		e.log.Info("sell rejected", "symbol", sym, "qty", qty, "err", err)
		return res, err
	}
	e.afterTrade(res)
	return res, nil
}

func (e *Engine) afterTrade(res ledger.Result) {
	tx := res.Transaction
	e.log.Info("trade executed",
		"side", tx.Side,
		"symbol", tx.Symbol,
		"qty", tx.Shares(),
		"price", tx.Price.String(),
		"cash", res.Cash.String())

	err := e.journal.RecordTrade(tradeRecord(e.ledger.Log().Len()-1, tx, res.Cash))
	if err != nil {
		e.log.Warn("journal trade failed", "symbol", tx.Symbol, "err", err)
	}
	e.recordValuation(tx.Time, "trade")
}

// Drift moves every market price by a bounded random step and returns the
// new listing.
func (e *Engine) Drift() []market.Stock {
	e.catalog = e.drifter.Apply(e.catalog)
	e.log.Debug("market drifted", "stocks", e.catalog.Len())
	e.recordValuation(e.now(), "drift")
	return e.catalog.Stocks()
}

func (e *Engine) recordValuation(at time.Time, reason string) {
	p := e.Portfolio()
	err := e.journal.RecordValuation(journal.ValuationSnapshot{
		Time:     at,
		Cash:     p.Cash,
		Holdings: p.Total.Sub(p.Cash),
		Total:    p.Total,
		Reason:   reason,
	})
	if err != nil {
		e.log.Warn("journal valuation failed", "reason", reason, "err", err)
	}
}

// Save writes the ledger to the portfolio file. Failures are returned as
// *store.PersistenceError and leave the in-memory session intact.
func (e *Engine) Save() error {
	if err := e.store.Save(e.ledger.State()); err != nil {
		e.log.Error("save portfolio failed", "path", e.store.Path, "err", err)
		return err
	}
	e.log.Info("saved portfolio", "path", e.store.Path, "transactions", len(e.ledger.Transactions()))
	return nil
}

// Close releases the journal.
func (e *Engine) Close() error {
	return e.journal.Close()
}
