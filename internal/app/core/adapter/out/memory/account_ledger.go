package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account/internal/app/core/domain"
	"github.com/JoeShih716/go-account/internal/app/core/usecase"
)

// AccountLedger 是單一帳戶的記憶體帳本，僅供單執行緒使用
//
// 結構:
//
//	account: 被操作的帳戶
//	processedTransactions: 已成功處理過的交易
type AccountLedger struct {
	account *domain.Account
	// 已處理過的交易
	processedTransactions map[uuid.UUID]struct{}
}

// NewAccountLedger 建立一個新的 AccountLedger 實例
func NewAccountLedger(account *domain.Account) *AccountLedger {
	return &AccountLedger{
		account:               account,
		processedTransactions: make(map[uuid.UUID]struct{}),
	}
}

// GetAccountBalance 取得帳戶的當前餘額
func (l *AccountLedger) GetAccountBalance(ctx context.Context) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	return l.account.Balance(), nil
}

// GetOwner 取得帳戶的當前戶名
func (l *AccountLedger) GetOwner(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return l.account.Owner(), nil
}

// PostTransaction 處理交易請求
//
// 參數:
//
//	ctx: 上下文
//	tran: 交易請求物件
//
// 回傳:
//
//	decimal.Decimal: 處理後的帳戶餘額
//	error: 處理錯誤，失敗時帳戶不變
func (l *AccountLedger) PostTransaction(ctx context.Context, tran *domain.Transaction) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return l.account.Balance(), err
	}
	if tran == nil {
		return l.account.Balance(), domain.ErrNullReference
	}
	return l.postTransactionInternal(tran)
}

// postTransactionInternal 執行交易核心邏輯 (內部方法)
func (l *AccountLedger) postTransactionInternal(tran *domain.Transaction) (decimal.Decimal, error) {
	// 重複的交易直接回傳目前餘額
	if _, ok := l.processedTransactions[tran.TransactionID]; ok {
		return l.account.Balance(), nil
	}

	var (
		balance decimal.Decimal
		err     error
	)
	switch tran.Type {
	case domain.TransactionTypeDeposit:
		balance, err = l.handleDeposit(tran)
	case domain.TransactionTypeWithdraw:
		balance, err = l.handleWithdraw(tran)
	case domain.TransactionTypeRename:
		balance, err = l.handleRename(tran)
	default:
		return l.account.Balance(), domain.ErrUnknownTransactionType
	}
	if err != nil {
		return balance, err
	}

	// uuid.Nil 不記錄
	if tran.TransactionID != uuid.Nil {
		l.processedTransactions[tran.TransactionID] = struct{}{}
	}
	return balance, nil
}

// handleDeposit 處理存款邏輯
func (l *AccountLedger) handleDeposit(tran *domain.Transaction) (decimal.Decimal, error) {
	return l.account.Deposit(tran.Amount)
}

// handleWithdraw 處理提款邏輯 (如餘額不足)
func (l *AccountLedger) handleWithdraw(tran *domain.Transaction) (decimal.Decimal, error) {
	return l.account.Withdraw(tran.Amount)
}

// handleRename 處理變更戶名邏輯，餘額不變
func (l *AccountLedger) handleRename(tran *domain.Transaction) (decimal.Decimal, error) {
	return l.account.Balance(), l.account.SetOwner(tran.Owner)
}

var _ usecase.Ledger = (*AccountLedger)(nil)
