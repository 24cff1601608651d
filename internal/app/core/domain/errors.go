package domain

import (
	"errors"
	"fmt"
)

// 三種根錯誤類型，彼此互不包含，呼叫端以 errors.Is 判斷類型
var (
	// ErrOutOfRange 數值超出允許範圍
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument 參數不合法
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNullReference 必填值缺失
	ErrNullReference = errors.New("null reference")
)

var (
	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = fmt.Errorf("%w: amount must be positive", ErrOutOfRange)

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrInvalidArgument)

	// ErrOwnerNil 戶名未提供
	ErrOwnerNil = fmt.Errorf("%w: owner must not be nil", ErrNullReference)

	// ErrOwnerEmpty 戶名為空或只有空白
	ErrOwnerEmpty = fmt.Errorf("%w: owner must not be empty", ErrInvalidArgument)

	// ErrOwnerTooLong 戶名超過長度上限
	ErrOwnerTooLong = fmt.Errorf("%w: owner is too long", ErrInvalidArgument)

	// ErrOwnerInvalidCharacters 戶名含有不允許的字元
	ErrOwnerInvalidCharacters = fmt.Errorf("%w: owner contains invalid characters", ErrInvalidArgument)

	// ErrUnknownTransactionType 未知的交易類型
	ErrUnknownTransactionType = fmt.Errorf("%w: unknown transaction type", ErrInvalidArgument)

	// ErrInvalidOwnerPolicy 戶名規則設定錯誤
	ErrInvalidOwnerPolicy = fmt.Errorf("%w: invalid owner policy", ErrInvalidArgument)
)
