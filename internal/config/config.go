package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/minibank/internal/account"
	"github.com/cleared-dev/minibank/internal/bank"
)

// FileName is the default scenario file name.
const FileName = "minibank.yaml"

// Config represents a minibank.yaml scenario.
type Config struct {
	Bank       BankConfig    `yaml:"bank"`
	Accounts   []AccountSpec `yaml:"accounts"`
	Operations []Operation   `yaml:"operations,omitempty"`
}

// BankConfig identifies the bank.
type BankConfig struct {
	Name string `yaml:"name"`
}

// AccountSpec describes one account to open. Accounts are opened in file
// order, so the first spec becomes account 1.
type AccountSpec struct {
	Kind           account.Kind    `yaml:"kind"`
	InterestRate   decimal.Decimal `yaml:"interest_rate,omitempty"`   // savings only
	OverdraftLimit decimal.Decimal `yaml:"overdraft_limit,omitempty"` // checking only
}

// OpKind names a scenario operation.
type OpKind string

const (
	OpDeposit  OpKind = "deposit"
	OpWithdraw OpKind = "withdraw"
	OpClose    OpKind = "close"
)

// Operation is one step applied to the bank after accounts are opened.
type Operation struct {
	Op      OpKind          `yaml:"op"`
	Account int             `yaml:"account"`
	Amount  decimal.Decimal `yaml:"amount,omitempty"`
}

// Load reads a scenario file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a sample scenario: two savings accounts and a checking
// account, with a little activity on each.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{Name: bankName},
		Accounts: []AccountSpec{
			{Kind: account.KindSavings, InterestRate: decimal.NewFromInt(5)},
			{Kind: account.KindSavings, InterestRate: decimal.NewFromInt(10)},
			{Kind: account.KindChecking, OverdraftLimit: decimal.NewFromInt(300)},
		},
		Operations: []Operation{
			{Op: OpDeposit, Account: 1, Amount: decimal.NewFromInt(1000)},
			{Op: OpWithdraw, Account: 1, Amount: decimal.NewFromInt(450)},
			{Op: OpWithdraw, Account: 3, Amount: decimal.NewFromInt(200)},
		},
	}
}

// Validate checks kinds and operation names without touching any bank.
func (c *Config) Validate() error {
	var errs []error
	for i, spec := range c.Accounts {
		switch spec.Kind {
		case account.KindStandard, account.KindSavings, account.KindChecking:
		default:
			errs = append(errs, fmt.Errorf("accounts[%d]: unknown kind %q", i, spec.Kind))
		}
	}
	for i, op := range c.Operations {
		switch op.Op {
		case OpDeposit, OpWithdraw, OpClose:
		default:
			errs = append(errs, fmt.Errorf("operations[%d]: unknown op %q", i, op.Op))
		}
	}
	return errors.Join(errs...)
}

// Build validates the scenario, opens its accounts on a new bank, and
// applies its operations in order. The first failing step aborts.
func (c *Config) Build() (*bank.Bank, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	b := bank.New(c.Bank.Name)
	for i, spec := range c.Accounts {
		var err error
		switch spec.Kind {
		case account.KindStandard:
			b.AddAccount()
		case account.KindSavings:
			_, err = b.AddSavingsAccount(spec.InterestRate)
		case account.KindChecking:
			_, err = b.AddCheckingAccount(spec.OverdraftLimit)
		}
		if err != nil {
			return nil, fmt.Errorf("accounts[%d]: %w", i, err)
		}
	}

	for i, op := range c.Operations {
		var err error
		switch op.Op {
		case OpDeposit:
			err = b.Deposit(op.Account, op.Amount)
		case OpWithdraw:
			err = b.Withdraw(op.Account, op.Amount)
		case OpClose:
			b.CloseAccount(op.Account)
		}
		if err != nil {
			return nil, fmt.Errorf("operations[%d] %s %d: %w", i, op.Op, op.Account, err)
		}
	}
	return b, nil
}
