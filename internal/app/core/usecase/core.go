package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層
type CoreUseCase struct {
	ledger Ledger
}

func NewCoreUseCase(ledger Ledger) *CoreUseCase {
	return &CoreUseCase{
		ledger: ledger,
	}
}

// PostTransaction 處理交易，回傳處理後的帳戶餘額
func (c *CoreUseCase) PostTransaction(ctx context.Context, tran *domain.Transaction) (decimal.Decimal, error) {
	return c.ledger.PostTransaction(ctx, tran)
}

// GetAccountBalance 取得帳戶餘額
func (c *CoreUseCase) GetAccountBalance(ctx context.Context) (decimal.Decimal, error) {
	return c.ledger.GetAccountBalance(ctx)
}

// GetOwner 取得戶名
func (c *CoreUseCase) GetOwner(ctx context.Context) (string, error) {
	return c.ledger.GetOwner(ctx)
}
