package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet holds the player's money. Balance never goes negative; spending
// only happens through DeductExpense which fails atomically.
type Wallet struct {
	ID               uuid.UUID       `json:"id"`
	PlayerID         uuid.UUID       `json:"player_id"`
	Balance          decimal.Decimal `json:"balance"`
	LifetimeEarnings decimal.Decimal `json:"lifetime_earnings"`
	LifetimeSpending decimal.Decimal `json:"lifetime_spending"`
}

// NewWallet creates a wallet with the starting balance.
func NewWallet(playerID uuid.UUID) Wallet {
	return Wallet{
		ID:               uuid.New(),
		PlayerID:         playerID,
		Balance:          StartingBalance,
		LifetimeEarnings: StartingBalance,
		LifetimeSpending: decimal.Zero,
	}
}

// AddIncome credits amount. Always succeeds; non-positive amounts are no-ops.
func (w *Wallet) AddIncome(amount decimal.Decimal) {
	if amount.Sign() <= 0 {
		return
	}
	w.Balance = w.Balance.Add(amount)
	w.LifetimeEarnings = w.LifetimeEarnings.Add(amount)
}

// DeductExpense debits amount or fails with ErrInsufficientFunds leaving the
// wallet untouched. There is no partial deduction.
func (w *Wallet) DeductExpense(amount decimal.Decimal) error {
	if amount.Sign() < 0 {
		return fmt.Errorf("%w: negative amount %s", ErrValidationFailed, amount)
	}
	if w.Balance.LessThan(amount) {
		return fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, amount, w.Balance)
	}
	w.Balance = w.Balance.Sub(amount)
	w.LifetimeSpending = w.LifetimeSpending.Add(amount)
	return nil
}

// CanAfford reports whether the balance covers amount.
func (w *Wallet) CanAfford(amount decimal.Decimal) bool {
	return !w.Balance.LessThan(amount)
}
