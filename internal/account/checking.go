package account

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Checking is an account that may be overdrawn down to -OverdraftLimit.
type Checking struct {
	ledger
	overdraftLimit decimal.Decimal
}

// NewChecking creates a Checking account with the given overdraft limit.
func NewChecking(number int, overdraftLimit decimal.Decimal) (*Checking, error) {
	if overdraftLimit.IsNegative() {
		return nil, fmt.Errorf("%w: overdraft limit %s must not be negative", ErrInvalidArgument, overdraftLimit)
	}
	l, err := newLedger(number)
	if err != nil {
		return nil, err
	}
	return &Checking{ledger: l, overdraftLimit: overdraftLimit}, nil
}

// Kind returns KindChecking.
func (a *Checking) Kind() Kind { return KindChecking }

// OverdraftLimit returns how far below zero the balance may go.
func (a *Checking) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }

// Withdraw debits amount unless it exceeds balance plus overdraft limit.
func (a *Checking) Withdraw(amount decimal.Decimal) error {
	return a.withdraw(amount, a.overdraftLimit, ErrOverdraftExceeded)
}

func (a *Checking) String() string {
	return fmt.Sprintf("Checking Account %d: balance %s", a.number, a.balance)
}

// EndOfMonth does nothing to a Checking account.
func (a *Checking) EndOfMonth() string {
	return "No action for Checking account"
}
