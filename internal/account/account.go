// Package account implements the bank account variants and their balance rules.
package account

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind names an account variant.
type Kind string

const (
	KindStandard Kind = "account"
	KindSavings  Kind = "savings"
	KindChecking Kind = "checking"
)

// Account is the behavior shared by every account variant.
type Account interface {
	fmt.Stringer
	Number() int
	Kind() Kind
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	// EndOfMonth performs the variant's month-end action and describes it.
	EndOfMonth() string
}

// ledger holds the number and balance common to all variants.
// Every mutation validates first and only then touches balance.
type ledger struct {
	number  int
	balance decimal.Decimal
}

func newLedger(number int) (ledger, error) {
	if number <= 0 {
		return ledger{}, fmt.Errorf("%w: account number %d must be positive", ErrInvalidArgument, number)
	}
	return ledger{number: number}, nil
}

func (l *ledger) Number() int { return l.number }

func (l *ledger) Balance() decimal.Decimal { return l.balance }

func (l *ledger) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &RangeError{Op: OpDeposit}
	}
	l.balance = l.balance.Add(amount)
	return nil
}

// withdraw debits amount if it does not push balance below -floor.
// insufficient is returned when it would.
func (l *ledger) withdraw(amount, floor decimal.Decimal, insufficient error) error {
	if !amount.IsPositive() {
		return &RangeError{Op: OpWithdraw}
	}
	if amount.GreaterThan(l.balance.Add(floor)) {
		return insufficient
	}
	l.balance = l.balance.Sub(amount)
	return nil
}

// Standard is a plain account with no overdraft and no interest.
type Standard struct {
	ledger
}

// NewStandard creates a Standard account with a zero balance.
func NewStandard(number int) (*Standard, error) {
	l, err := newLedger(number)
	if err != nil {
		return nil, err
	}
	return &Standard{ledger: l}, nil
}

// Kind returns KindStandard.
func (a *Standard) Kind() Kind { return KindStandard }

// Withdraw debits amount, refusing to take the balance below zero.
func (a *Standard) Withdraw(amount decimal.Decimal) error {
	return a.withdraw(amount, decimal.Zero, ErrInsufficientFunds)
}

func (a *Standard) String() string {
	return fmt.Sprintf("Account %d: balance %s", a.number, a.balance)
}

// EndOfMonth is a no-op for a Standard account and returns "".
func (a *Standard) EndOfMonth() string {
	return ""
}
