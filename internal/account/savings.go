package account

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Savings is an interest-bearing account.
type Savings struct {
	ledger
	interestRate decimal.Decimal // percent
}

// NewSavings creates a Savings account paying interestRate percent.
func NewSavings(number int, interestRate decimal.Decimal) (*Savings, error) {
	if interestRate.IsNegative() {
		return nil, fmt.Errorf("%w: interest rate %s must not be negative", ErrInvalidArgument, interestRate)
	}
	l, err := newLedger(number)
	if err != nil {
		return nil, err
	}
	return &Savings{ledger: l, interestRate: interestRate}, nil
}

// Kind returns KindSavings.
func (a *Savings) Kind() Kind { return KindSavings }

// InterestRate returns the rate fixed at creation, in percent.
func (a *Savings) InterestRate() decimal.Decimal { return a.interestRate }

// AccruedInterest returns balance * rate / 100.
func (a *Savings) AccruedInterest() decimal.Decimal {
	return a.balance.Mul(a.interestRate).Div(hundred)
}

// Withdraw debits amount, refusing to take the balance below zero.
func (a *Savings) Withdraw(amount decimal.Decimal) error {
	return a.withdraw(amount, decimal.Zero, ErrInsufficientFunds)
}

func (a *Savings) String() string {
	return fmt.Sprintf("Savings Account %d: balance %s", a.number, a.balance)
}

// EndOfMonth reports the interest rate applied this month. The accrued
// amount is available from AccruedInterest; it is not credited.
func (a *Savings) EndOfMonth() string {
	return fmt.Sprintf("Interest added SavingsAccount %d: balance: %s interest: %s", a.number, a.balance, a.interestRate)
}
