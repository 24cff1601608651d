package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-account/internal/app/core/domain"
)

// Config 定義帳戶與重放交易的配置
type Config struct {
	Account      AccountConfig       `yaml:"account"`
	Transactions []TransactionConfig `yaml:"transactions"`
}

// AccountConfig 帳戶初始設定
type AccountConfig struct {
	Owner       string            `yaml:"owner"`
	OwnerPolicy OwnerPolicyConfig `yaml:"owner_policy"`
}

// OwnerPolicyConfig 戶名驗證規則，未填寫時使用預設值
type OwnerPolicyConfig struct {
	MaxLength int    `yaml:"max_length"` // 最大字元數 (預設 20)
	Pattern   string `yaml:"pattern"`    // 正規表示式 (預設只允許字母與單一空白)
}

// TransactionConfig 一筆交易
type TransactionConfig struct {
	RefID  string  `yaml:"ref_id"` // 空白時自動產生 UUID
	Type   string  `yaml:"type"`   // deposit / withdraw / rename
	Amount string  `yaml:"amount"` // 十進位字串，避免浮點誤差
	Owner  *string `yaml:"owner"`  // 只有 rename 使用，null 代表未提供
}

// Load 讀取並解析設定檔
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse 解析 YAML 並補全預設值
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// 補全戶名規則預設配置 (如果 yaml 沒寫)
	if cfg.Account.OwnerPolicy.MaxLength == 0 {
		cfg.Account.OwnerPolicy.MaxLength = domain.DefaultOwnerMaxLength
	}
	if cfg.Account.OwnerPolicy.Pattern == "" {
		cfg.Account.OwnerPolicy.Pattern = domain.DefaultOwnerPattern
	}
	return cfg, nil
}

// Build 產生戶名驗證規則
func (c OwnerPolicyConfig) Build() (*domain.OwnerPolicy, error) {
	return domain.NewOwnerPolicy(c.MaxLength, c.Pattern)
}

// ToTransaction 轉換為 Domain Transaction
func (c TransactionConfig) ToTransaction() (*domain.Transaction, error) {
	id := uuid.New()
	if c.RefID != "" {
		u, err := uuid.Parse(c.RefID)
		if err != nil {
			return nil, fmt.Errorf("invalid ref_id %q: %w", c.RefID, err)
		}
		id = u
	}

	txType, err := domain.ParseTransactionType(c.Type)
	if err != nil {
		return nil, err
	}

	tran := &domain.Transaction{
		TransactionID: id,
		Type:          txType,
		Owner:         c.Owner,
		CreatedAt:     time.Now().UnixNano(),
	}
	if txType != domain.TransactionTypeRename {
		amount, err := decimal.NewFromString(c.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", c.Amount, err)
		}
		tran.Amount = amount
	}
	return tran, nil
}
