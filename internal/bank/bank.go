// Package bank owns a collection of accounts, numbers them, and runs
// reports and month-end processing across them.
package bank

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/minibank/internal/account"
)

// ErrAccountNotFound is returned when no held account has the given number.
var ErrAccountNotFound = errors.New("account not found")

// Bank holds accounts in the order they were opened. Numbers come from a
// single counter shared by every variant; closed numbers are never reused.
type Bank struct {
	name     string
	accounts []account.Account
	next     int
}

// New creates an empty Bank whose first account will be number 1.
// The zero Bank is also ready to use.
func New(name string) *Bank {
	return &Bank{name: name, next: 1}
}

// Name returns the bank's display name.
func (b *Bank) Name() string {
	return b.name
}

// AddAccount opens a Standard account with the next number.
func (b *Bank) AddAccount() *account.Standard {
	a, err := account.NewStandard(b.nextNumber())
	if err != nil {
		// unreachable: nextNumber is always positive
		panic(err)
	}
	b.add(a)
	return a
}

// AddSavingsAccount opens a Savings account paying interestRate percent.
func (b *Bank) AddSavingsAccount(interestRate decimal.Decimal) (*account.Savings, error) {
	a, err := account.NewSavings(b.nextNumber(), interestRate)
	if err != nil {
		return nil, fmt.Errorf("opening savings account: %w", err)
	}
	b.add(a)
	return a, nil
}

// AddCheckingAccount opens a Checking account with the given overdraft limit.
func (b *Bank) AddCheckingAccount(overdraftLimit decimal.Decimal) (*account.Checking, error) {
	a, err := account.NewChecking(b.nextNumber(), overdraftLimit)
	if err != nil {
		return nil, fmt.Errorf("opening checking account: %w", err)
	}
	b.add(a)
	return a, nil
}

func (b *Bank) nextNumber() int {
	if b.next < 1 {
		b.next = 1
	}
	return b.next
}

func (b *Bank) add(a account.Account) {
	b.accounts = append(b.accounts, a)
	b.next++
}

// CloseAccount removes the account with the given number. Closing an
// unknown number is a no-op; the result reports whether anything was removed.
func (b *Bank) CloseAccount(number int) bool {
	i := b.index(number)
	if i < 0 {
		return false
	}
	b.accounts = slices.Delete(b.accounts, i, i+1)
	return true
}

// Accounts returns the held accounts in insertion order. The slice is a
// copy; reordering or truncating it does not affect the bank.
func (b *Bank) Accounts() []account.Account {
	return slices.Clone(b.accounts)
}

// Account returns the account with the given number.
func (b *Bank) Account(number int) (account.Account, bool) {
	i := b.index(number)
	if i < 0 {
		return nil, false
	}
	return b.accounts[i], true
}

// Deposit credits amount to the account with the given number.
func (b *Bank) Deposit(number int, amount decimal.Decimal) error {
	a, ok := b.Account(number)
	if !ok {
		return fmt.Errorf("deposit to %d: %w", number, ErrAccountNotFound)
	}
	return a.Deposit(amount)
}

// Withdraw debits amount from the account with the given number.
func (b *Bank) Withdraw(number int, amount decimal.Decimal) error {
	a, ok := b.Account(number)
	if !ok {
		return fmt.Errorf("withdraw from %d: %w", number, ErrAccountNotFound)
	}
	return a.Withdraw(amount)
}

// AccountReport returns "\n"+String() for each account, concatenated.
func (b *Bank) AccountReport() string {
	var sb strings.Builder
	for _, a := range b.accounts {
		sb.WriteString("\n")
		sb.WriteString(a.String())
	}
	return sb.String()
}

// EndOfMonth runs every account's month-end action in insertion order and
// returns "\n"+result for each, concatenated.
func (b *Bank) EndOfMonth() string {
	var sb strings.Builder
	for _, a := range b.accounts {
		sb.WriteString("\n")
		sb.WriteString(a.EndOfMonth())
	}
	return sb.String()
}

func (b *Bank) index(number int) int {
	return slices.IndexFunc(b.accounts, func(a account.Account) bool {
		return a.Number() == number
	})
}
