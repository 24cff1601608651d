package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account/internal/app/core/domain"
)

// Ledger 是單一帳戶帳務的介面
type Ledger interface {
	// 不再分 Deposit/Withdraw/Rename，直接看 tran.Type 決定
	PostTransaction(ctx context.Context, tran *domain.Transaction) (decimal.Decimal, error)
	// GetAccountBalance 取得帳戶餘額
	GetAccountBalance(ctx context.Context) (decimal.Decimal, error)
	// GetOwner 取得戶名
	GetOwner(ctx context.Context) (string, error)
}
