package main

import (
	"context"
	"log"

	"github.com/JoeShih716/go-account/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-account/internal/app/core/config"
	"github.com/JoeShih716/go-account/internal/app/core/domain"
	"github.com/JoeShih716/go-account/internal/app/core/usecase"
)

const configPath = "config/config.yaml"

func main() {
	// 1. 載入設定
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. 建立戶名規則與帳戶
	policy, err := cfg.Account.OwnerPolicy.Build()
	if err != nil {
		log.Fatalf("Failed to build owner policy: %v", err)
	}
	account, err := domain.NewAccount(cfg.Account.Owner, domain.WithOwnerPolicy(policy))
	if err != nil {
		log.Fatalf("Failed to create account: %v", err)
	}
	log.Printf("Account %s created for %q", account.ID, account.Owner())

	// 3. 初始化 Ledger 與 UseCase
	core := usecase.NewCoreUseCase(memory.NewAccountLedger(account))

	// 4. 依序重放交易
	ctx := context.Background()
	replay(ctx, core, cfg.Transactions)

	balance, err := core.GetAccountBalance(ctx)
	if err != nil {
		log.Fatalf("Failed to get balance: %v", err)
	}
	owner, err := core.GetOwner(ctx)
	if err != nil {
		log.Fatalf("Failed to get owner: %v", err)
	}
	log.Printf("Final balance=%s owner=%q", balance, owner)
}
