package account

import (
	"errors"
	"fmt"
)

// Error text below is part of the public contract and is matched verbatim
// by callers, so it keeps its original capitalization.
//
//nolint:revive,stylecheck
var (
	// ErrInvalidArgument is returned when an account cannot be constructed
	// from the given number, rate, or limit.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNonPositiveAmount matches every *RangeError via errors.Is.
	ErrNonPositiveAmount = errors.New("amount has to be greater than zero")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("Insufficient funds")

	// ErrOverdraftExceeded is returned when a checking withdrawal exceeds
	// balance plus overdraft limit.
	ErrOverdraftExceeded = errors.New("Overdraft limit exceeded!")
)

// Operation names a balance mutation.
type Operation string

const (
	OpDeposit  Operation = "Deposit"
	OpWithdraw Operation = "Withdraw"
)

// RangeError reports a non-positive amount passed to Deposit or Withdraw.
type RangeError struct {
	Op Operation
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s amount has to be greater than zero", e.Op)
}

// Is lets errors.Is(err, ErrNonPositiveAmount) match any RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrNonPositiveAmount
}

// IsFundsError reports whether err is an insufficient-funds error of
// either flavor.
func IsFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) || errors.Is(err, ErrOverdraftExceeded)
}
