package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/minibank/internal/account"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Bank")
	cfg.Accounts = append(cfg.Accounts, AccountSpec{Kind: account.KindStandard})
	cfg.Operations = append(cfg.Operations, Operation{Op: OpClose, Account: 2})

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Bank.Name, got.Bank.Name)
	require.Len(t, got.Accounts, len(cfg.Accounts))
	for i := range cfg.Accounts {
		assert.Equal(t, cfg.Accounts[i].Kind, got.Accounts[i].Kind)
		assert.True(t, cfg.Accounts[i].InterestRate.Equal(got.Accounts[i].InterestRate), "accounts[%d] interest_rate", i)
		assert.True(t, cfg.Accounts[i].OverdraftLimit.Equal(got.Accounts[i].OverdraftLimit), "accounts[%d] overdraft_limit", i)
	}
	require.Len(t, got.Operations, len(cfg.Operations))
	for i := range cfg.Operations {
		assert.Equal(t, cfg.Operations[i].Op, got.Operations[i].Op)
		assert.Equal(t, cfg.Operations[i].Account, got.Operations[i].Account)
		assert.True(t, cfg.Operations[i].Amount.Equal(got.Operations[i].Amount), "operations[%d] amount", i)
	}
}

func TestLoad_UnquotedNumbers(t *testing.T) {
	contents := `bank:
  name: Plain Bank
accounts:
  - kind: savings
    interest_rate: 2.5
  - kind: checking
    overdraft_limit: 300
operations:
  - op: deposit
    account: 1
    amount: 1000.75
`
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Accounts, 2)
	assert.True(t, cfg.Accounts[0].InterestRate.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, cfg.Accounts[1].OverdraftLimit.Equal(decimal.NewFromInt(300)))
	require.Len(t, cfg.Operations, 1)
	assert.True(t, cfg.Operations[0].Amount.Equal(decimal.RequireFromString("1000.75")))
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadAmount(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	bad := "accounts:\n  - kind: savings\n    interest_rate: lots\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("Test Bank")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Bank")
	assert.Contains(t, contents, "kind: savings")
	assert.Contains(t, contents, "kind: checking")
	assert.Contains(t, contents, "op: withdraw")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default("Test Bank").Validate())

	cfg := &Config{
		Accounts:   []AccountSpec{{Kind: "brokerage"}},
		Operations: []Operation{{Op: "transfer", Account: 1}},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `accounts[0]: unknown kind "brokerage"`)
	assert.Contains(t, err.Error(), `operations[0]: unknown op "transfer"`)
}

func TestBuild_Default(t *testing.T) {
	b, err := Default("Test Bank").Build()
	require.NoError(t, err)

	assert.Equal(t, "Test Bank", b.Name())
	assert.Equal(t, "\nSavings Account 1: balance 550"+
		"\nSavings Account 2: balance 0"+
		"\nChecking Account 3: balance -200", b.AccountReport())
}

func TestBuild_Close(t *testing.T) {
	cfg := &Config{
		Accounts: []AccountSpec{{Kind: account.KindStandard}, {Kind: account.KindStandard}},
		Operations: []Operation{
			{Op: OpClose, Account: 1},
			{Op: OpClose, Account: 7}, // unknown: no-op
		},
	}
	b, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, "\nAccount 2: balance 0", b.AccountReport())
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{
			name: "negative rate",
			cfg:  Config{Accounts: []AccountSpec{{Kind: account.KindSavings, InterestRate: decimal.NewFromInt(-1)}}},
			want: account.ErrInvalidArgument,
		},
		{
			name: "insufficient funds",
			cfg: Config{
				Accounts:   []AccountSpec{{Kind: account.KindStandard}},
				Operations: []Operation{{Op: OpWithdraw, Account: 1, Amount: decimal.NewFromInt(1000)}},
			},
			want: account.ErrInsufficientFunds,
		},
		{
			name: "overdraft exceeded",
			cfg: Config{
				Accounts:   []AccountSpec{{Kind: account.KindChecking, OverdraftLimit: decimal.NewFromInt(200)}},
				Operations: []Operation{{Op: OpWithdraw, Account: 1, Amount: decimal.NewFromInt(500)}},
			},
			want: account.ErrOverdraftExceeded,
		},
		{
			name: "missing amount",
			cfg: Config{
				Accounts:   []AccountSpec{{Kind: account.KindStandard}},
				Operations: []Operation{{Op: OpDeposit, Account: 1}},
			},
			want: account.ErrNonPositiveAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_ErrorNamesOperation(t *testing.T) {
	cfg := &Config{
		Accounts: []AccountSpec{{Kind: account.KindStandard}},
		Operations: []Operation{
			{Op: OpDeposit, Account: 1, Amount: decimal.NewFromInt(10)},
			{Op: OpWithdraw, Account: 1, Amount: decimal.NewFromInt(20)},
		},
	}
	_, err := cfg.Build()
	require.Error(t, err)
	assert.EqualError(t, err, "operations[1] withdraw 1: Insufficient funds")
}
