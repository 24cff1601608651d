package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account/internal/app/core/config"
	"github.com/JoeShih716/go-account/internal/app/core/domain"
	"github.com/JoeShih716/go-account/internal/app/core/usecase"
)

// result 單筆交易的重放結果
type result struct {
	Index   int
	Type    domain.TransactionType
	Balance decimal.Decimal
	Owner   string
	Err     error
}

// replay 依序重放交易，失敗只記錄不中斷
func replay(ctx context.Context, core *usecase.CoreUseCase, transactions []config.TransactionConfig) []result {
	results := make([]result, 0, len(transactions))
	for i, tc := range transactions {
		tran, err := tc.ToTransaction()
		if err != nil {
			log.Printf("[%d] skipped: %v", i, err)
			results = append(results, result{Index: i, Err: err})
			continue
		}

		r := result{Index: i, Type: tran.Type}
		r.Balance, r.Err = core.PostTransaction(ctx, tran)
		if r.Err != nil {
			log.Printf("[%d] %s %s rejected (%s): %v", i, tran.Type, tran.TransactionID, errorKind(r.Err), r.Err)
			results = append(results, r)
			continue
		}
		if r.Owner, r.Err = core.GetOwner(ctx); r.Err != nil {
			log.Printf("[%d] %s %s owner lookup failed: %v", i, tran.Type, tran.TransactionID, r.Err)
			results = append(results, r)
			continue
		}
		log.Printf("[%d] %s %s ok, balance=%s owner=%q", i, tran.Type, tran.TransactionID, r.Balance, r.Owner)
		results = append(results, r)
	}
	return results
}

// errorKind 回傳錯誤所屬的根錯誤類型
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrOutOfRange):
		return "out of range"
	case errors.Is(err, domain.ErrNullReference):
		return "null reference"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid argument"
	default:
		return "unknown"
	}
}
