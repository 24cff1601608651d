package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultOwnerMaxLength 戶名預設長度上限 (以字元計)
	DefaultOwnerMaxLength = 20

	// DefaultOwnerPattern 預設只允許字母組成的單字，單字之間以單一空白分隔
	DefaultOwnerPattern = `^\pL+( \pL+)*$`
)

// DefaultOwnerPolicy 未指定規則時使用
var DefaultOwnerPolicy = MustOwnerPolicy(DefaultOwnerMaxLength, DefaultOwnerPattern)

// OwnerPolicy 戶名驗證規則
//
// 結構:
//
//	MaxLength: 最大字元數 (rune)，<= 0 時使用 DefaultOwnerMaxLength
//	Pattern: 戶名必須完整符合的正規表示式，nil 時不檢查字元
type OwnerPolicy struct {
	MaxLength int
	Pattern   *regexp.Regexp
}

// NewOwnerPolicy 建立戶名驗證規則
//
// 參數:
//
//	maxLength: 最大字元數，必須大於 0
//	pattern: 正規表示式
//
// 回傳:
//
//	*OwnerPolicy: 驗證規則
//	error: ErrInvalidOwnerPolicy
func NewOwnerPolicy(maxLength int, pattern string) (*OwnerPolicy, error) {
	if maxLength <= 0 {
		return nil, fmt.Errorf("%w: max length %d must be positive", ErrInvalidOwnerPolicy, maxLength)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOwnerPolicy, err)
	}
	return &OwnerPolicy{
		MaxLength: maxLength,
		Pattern:   re,
	}, nil
}

// MustOwnerPolicy 同 NewOwnerPolicy，設定錯誤時 panic
func MustOwnerPolicy(maxLength int, pattern string) *OwnerPolicy {
	p, err := NewOwnerPolicy(maxLength, pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate 依序檢查: nil -> 空白 -> 長度 -> 字元
func (p *OwnerPolicy) Validate(owner *string) error {
	if owner == nil {
		return ErrOwnerNil
	}
	if strings.TrimSpace(*owner) == "" {
		return ErrOwnerEmpty
	}
	maxLength := p.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultOwnerMaxLength
	}
	if n := utf8.RuneCountInString(*owner); n > maxLength {
		return fmt.Errorf("%w: %d characters, max %d", ErrOwnerTooLong, n, maxLength)
	}
	if p.Pattern != nil && !p.Pattern.MatchString(*owner) {
		return fmt.Errorf("%w: %q", ErrOwnerInvalidCharacters, *owner)
	}
	return nil
}
