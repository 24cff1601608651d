package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
	// 變更戶名
	TransactionTypeRename TransactionType = 3
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeDeposit:  "deposit",
	TransactionTypeWithdraw: "withdraw",
	TransactionTypeRename:   "rename",
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TransactionType(%d)", uint8(t))
}

// ParseTransactionType 由設定檔名稱轉換交易類型
func ParseTransactionType(name string) (TransactionType, error) {
	for t, n := range transactionTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransactionType, name)
}

// Transaction 對單一帳戶的一筆異動請求
type Transaction struct {
	// TransactionID: 外部追蹤號 (UUID)，用於冪等
	TransactionID uuid.UUID
	// Amount: 存款 / 提款金額
	Amount decimal.Decimal
	// Owner: 新戶名，只有 Rename 使用，nil 代表未提供
	Owner *string
	// CreatedAt: 交易時間 (unix nano)
	CreatedAt int64
	Type      TransactionType
}
