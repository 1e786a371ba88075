// Package report renders a bank's accounts for export.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cleared-dev/minibank/internal/account"
)

// Header is the CSV header row.
var Header = []string{"number", "kind", "balance", "interest_rate", "overdraft_limit"}

const (
	numFields    = 5
	colNumber    = 0
	colKind      = 1
	colBalance   = 2
	colRate      = 3
	colOverdraft = 4
)

// WriteCSV writes one row per account, in the order given.
func WriteCSV(w io.Writer, accounts []account.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, a := range accounts {
		if err := cw.Write(MarshalAccount(a)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an account to a CSV row. Columns that do not
// apply to the account's kind are left empty.
func MarshalAccount(a account.Account) []string {
	row := make([]string, numFields)
	row[colNumber] = strconv.Itoa(a.Number())
	row[colKind] = string(a.Kind())
	row[colBalance] = a.Balance().String()

	switch v := a.(type) {
	case *account.Savings:
		row[colRate] = v.InterestRate().String()
	case *account.Checking:
		row[colOverdraft] = v.OverdraftLimit().String()
	}
	return row
}
