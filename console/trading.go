package console

import (
	"errors"
	"io"
	"strconv"

	"github.com/rustyeddy/papertrader/ledger"
	"github.com/rustyeddy/papertrader/market"
	"github.com/rustyeddy/papertrader/sim"
	"github.com/shopspring/decimal"
)

const tradingMenu = `
Menu:
1. View market data
2. Buy stock
3. Sell stock
4. View portfolio & cash balance
5. View transaction history
6. Simulate market price movement
7. Save & Exit`

// Shell is the interactive trading menu over one engine.
type Shell struct {
	p prompter
	e *sim.Engine
}

// NewShell returns a shell that reads commands from r and writes to w.
func NewShell(w io.Writer, r io.Reader, e *sim.Engine) *Shell {
	return &Shell{p: newPrompter(w, r), e: e}
}

// Run loops over the menu until the user picks Save & Exit or input runs
// out. Either way the portfolio is saved; a failed save is reported and
// Run still returns nil. Only read errors other than io.EOF are returned.
func (s *Shell) Run() error {
	s.p.println("=== Simple Stock Trading Platform ===")
	s.startupNotes()

	for {
		s.p.println(tradingMenu)
		choice, err := s.p.ask("Choose: ")
		if err == nil {
			var done bool
			done, err = s.dispatch(choice)
			if done {
				break
			}
		}
		if errors.Is(err, io.EOF) {
			s.p.println()
			break
		}
		if err != nil {
			return err
		}
	}

	s.save()
	s.p.println("Exiting. Goodbye!")
	return nil
}

func (s *Shell) startupNotes() {
	if err := s.e.LoadErr(); err != nil {
		s.p.printf("Failed to load portfolio: %v\n", err)
		return
	}
	if n := len(s.e.Skipped()); n > 0 {
		s.p.printf("Loaded portfolio from %s (%d malformed lines skipped).\n", s.e.StorePath(), n)
	}
}

func (s *Shell) dispatch(choice string) (done bool, err error) {
	switch choice {
	case "1":
		s.showMarket()
	case "2":
		err = s.buy()
	case "3":
		err = s.sell()
	case "4":
		s.showPortfolio()
	case "5":
		s.showHistory()
	case "6":
		s.drift()
	case "7":
		return true, nil
	default:
		s.p.println("Invalid choice.")
	}
	return false, err
}

func (s *Shell) showMarket() {
	s.p.println("\n-- Market --")
	WriteMarket(s.p.w, s.e.Market())
	s.p.println("(Tip: use Simulate market price movement to change prices.)")
}

// readQuantity prompts for a share count. ok is false when the input was
// rejected and already reported.
func (s *Shell) readQuantity(label string) (qty int, ok bool, err error) {
	raw, err := s.p.ask(label)
	if err != nil {
		return 0, false, err
	}
	qty, convErr := strconv.Atoi(raw)
	if convErr != nil {
		s.p.println("Invalid number.")
		return 0, false, nil
	}
	if qty <= 0 {
		s.p.println("Quantity must be > 0.")
		return 0, false, nil
	}
	return qty, true, nil
}

func (s *Shell) buy() error {
	raw, err := s.p.ask("Enter symbol to BUY: ")
	if err != nil {
		return err
	}
	st, ok := s.e.Stock(raw)
	if !ok {
		s.p.println("Unknown symbol.")
		return nil
	}
	qty, ok, err := s.readQuantity("Quantity to buy (integer): ")
	if !ok {
		return err
	}

	res, err := s.e.Buy(st.Symbol, qty)
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		cost := st.Price.Mul(decimal.NewFromInt(int64(qty)))
		s.p.printf("Insufficient cash. Need %s but have %s\n",
			market.Format(cost), market.Format(s.e.Ledger().Cash()))
	case err != nil:
		s.p.printf("Buy rejected: %v\n", err)
	default:
		s.p.printf("Bought %d %s @ %s. New cash: %s\n",
			qty, st.Symbol, market.Format(res.Transaction.Price), market.Format(res.Cash))
	}
	return nil
}

func (s *Shell) sell() error {
	raw, err := s.p.ask("Enter symbol to SELL: ")
	if err != nil {
		return err
	}
	st, ok := s.e.Stock(raw)
	if !ok {
		s.p.println("Unknown symbol.")
		return nil
	}
	owned := s.e.Ledger().Quantity(st.Symbol)
	if owned == 0 {
		s.p.printf("You don't own any shares of %s\n", st.Symbol)
		return nil
	}
	qty, ok, err := s.readQuantity("Quantity to sell (integer): ")
	if !ok {
		return err
	}

	res, err := s.e.Sell(st.Symbol, qty)
	switch {
	case errors.Is(err, ledger.ErrInsufficientShares):
		s.p.printf("Cannot sell more than you own. Owned: %d\n", owned)
	case err != nil:
		s.p.printf("Sell rejected: %v\n", err)
	default:
		s.p.printf("Sold %d %s @ %s. New cash: %s\n",
			qty, st.Symbol, market.Format(res.Transaction.Price), market.Format(res.Cash))
	}
	return nil
}

func (s *Shell) showPortfolio() {
	s.p.println("\n-- Portfolio --")
	WritePortfolio(s.p.w, s.e.Portfolio())
}

func (s *Shell) showHistory() {
	s.p.println("\n-- Transaction History --")
	WriteHistory(s.p.w, s.e.History())
}

func (s *Shell) drift() {
	s.p.println("Simulating market movement...")
	s.e.Drift()
	s.p.println("Market updated.")
	s.showMarket()
}

func (s *Shell) save() {
	if err := s.e.Save(); err != nil {
		s.p.printf("Failed to save portfolio: %v\n", err)
		return
	}
	s.p.printf("Saved portfolio to %s\n", s.e.StorePath())
}
