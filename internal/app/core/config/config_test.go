package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-account/internal/app/core/domain"
)

const sampleConfig = `
account:
  owner: "J Doe"
  owner_policy:
    max_length: 30
transactions:
  - ref_id: "6f1c2a64-3c4e-4d0e-9a55-2f3b8f7f0a11"
    type: deposit
    amount: "100"
  - type: withdraw
    amount: "0.99"
  - type: rename
    owner: "John Doe"
  - type: rename
    owner: null
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "J Doe", cfg.Account.Owner)
	assert.Equal(t, 30, cfg.Account.OwnerPolicy.MaxLength)
	assert.Equal(t, domain.DefaultOwnerPattern, cfg.Account.OwnerPolicy.Pattern)
	require.Len(t, cfg.Transactions, 4)
	require.NotNil(t, cfg.Transactions[2].Owner)
	assert.Equal(t, "John Doe", *cfg.Transactions[2].Owner)
	assert.Nil(t, cfg.Transactions[3].Owner)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("account:\n  owner: John\n"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultOwnerMaxLength, cfg.Account.OwnerPolicy.MaxLength)
	assert.Equal(t, domain.DefaultOwnerPattern, cfg.Account.OwnerPolicy.Pattern)
	assert.Empty(t, cfg.Transactions)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("account: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "J Doe", cfg.Account.Owner)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOwnerPolicyConfig_Build(t *testing.T) {
	p, err := OwnerPolicyConfig{MaxLength: 20, Pattern: domain.DefaultOwnerPattern}.Build()
	require.NoError(t, err)
	assert.Equal(t, 20, p.MaxLength)

	_, err = OwnerPolicyConfig{MaxLength: 20, Pattern: "("}.Build()
	assert.ErrorIs(t, err, domain.ErrInvalidOwnerPolicy)
}

func TestTransactionConfig_ToTransaction(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	tran, err := cfg.Transactions[0].ToTransaction()
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse("6f1c2a64-3c4e-4d0e-9a55-2f3b8f7f0a11"), tran.TransactionID)
	assert.Equal(t, domain.TransactionTypeDeposit, tran.Type)
	assert.Equal(t, "100", tran.Amount.String())
	assert.NotZero(t, tran.CreatedAt)

	tran, err = cfg.Transactions[1].ToTransaction()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tran.TransactionID)
	assert.Equal(t, "0.99", tran.Amount.String())

	tran, err = cfg.Transactions[3].ToTransaction()
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionTypeRename, tran.Type)
	assert.Nil(t, tran.Owner)
	assert.True(t, tran.Amount.IsZero())
}

func TestTransactionConfig_ToTransaction_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  TransactionConfig
	}{
		{"bad_ref_id", TransactionConfig{RefID: "nope", Type: "deposit", Amount: "1"}},
		{"bad_type", TransactionConfig{Type: "transfer", Amount: "1"}},
		{"bad_amount", TransactionConfig{Type: "withdraw", Amount: "ten"}},
		{"missing_amount", TransactionConfig{Type: "deposit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tran, err := tt.cfg.ToTransaction()
			assert.Nil(t, tran)
			assert.Error(t, err)
		})
	}
}
