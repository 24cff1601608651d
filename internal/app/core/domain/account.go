package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account 帳戶
//
// 餘額永遠 >= 0，只能透過 Deposit / Withdraw 變動。
// 任何驗證失敗都不會修改帳戶狀態。
type Account struct {
	ID      uuid.UUID
	owner   string
	balance decimal.Decimal
	policy  *OwnerPolicy
}

// Option 建立帳戶時的選項
type Option func(*Account)

// WithID 指定帳戶 ID
func WithID(id uuid.UUID) Option {
	return func(a *Account) {
		a.ID = id
	}
}

// WithOwnerPolicy 指定戶名驗證規則
func WithOwnerPolicy(policy *OwnerPolicy) Option {
	return func(a *Account) {
		if policy != nil {
			a.policy = policy
		}
	}
}

// NewAccount 建立一個餘額為 0 的帳戶
//
// 參數:
//
//	owner: 戶名，與 SetOwner 相同的驗證
//	opts: 選項
//
// 回傳:
//
//	*Account: 帳戶
//	error: 戶名驗證錯誤
func NewAccount(owner string, opts ...Option) (*Account, error) {
	a := &Account{
		ID:      uuid.New(),
		balance: decimal.Zero,
		policy:  DefaultOwnerPolicy,
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.SetOwner(&owner); err != nil {
		return nil, err
	}
	return a, nil
}

// Owner 戶名
func (a *Account) Owner() string {
	return a.owner
}

// SetOwner 變更戶名，nil 代表未提供
func (a *Account) SetOwner(owner *string) error {
	if err := a.ownerPolicy().Validate(owner); err != nil {
		return err
	}
	a.owner = *owner
	return nil
}

// ownerPolicy 未經 NewAccount 建立的帳戶使用預設規則
func (a *Account) ownerPolicy() *OwnerPolicy {
	if a.policy == nil {
		return DefaultOwnerPolicy
	}
	return a.policy
}

// Balance 目前餘額
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit 存款，回傳存款後餘額
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, ErrAmountMustBePositive
	}

	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Withdraw 提款，回傳提款後餘額
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, ErrAmountMustBePositive
	}

	if a.balance.LessThan(amount) {
		return a.balance, ErrInsufficientBalance
	}

	a.balance = a.balance.Sub(amount)
	return a.balance, nil
}
