package di

import (
	"github.com/ChosunOne/treasury-sub000/internal/interface/handler"
)

// Handlers はアプリケーションのハンドラーを保持します
type Handlers struct {
	Health      *handler.HealthHandler
	Account     *handler.AccountHandler
	Asset       *handler.AssetHandler
	Institution *handler.InstitutionHandler
	Transaction *handler.TransactionHandler
	User        *handler.UserHandler
}

// NewHandlers はContainerから全てのハンドラーを初期化します
func NewHandlers(c *Container) *Handlers {
	healthHandler := handler.NewHealthHandler()
	if c.PgClient != nil {
		healthHandler.RegisterChecker("postgres", c.PgClient)
	}
	if c.RedisClient != nil {
		healthHandler.RegisterChecker("redis", c.RedisClient)
	}

	return &Handlers{
		Health:      healthHandler,
		Account:     handler.NewAccountHandler(c.Accounts, c.CursorCodec),
		Asset:       handler.NewAssetHandler(c.Assets, c.CursorCodec),
		Institution: handler.NewInstitutionHandler(c.Institutions, c.CursorCodec),
		Transaction: handler.NewTransactionHandler(c.Transactions, c.CursorCodec),
		User:        handler.NewUserHandler(c.Users, c.CursorCodec),
	}
}

// NewHandlersForTest はテスト用にハンドラーを初期化します（HealthHandlerなし）
func NewHandlersForTest(c *Container) *Handlers {
	return &Handlers{
		Account:     handler.NewAccountHandler(c.Accounts, c.CursorCodec),
		Asset:       handler.NewAssetHandler(c.Assets, c.CursorCodec),
		Institution: handler.NewInstitutionHandler(c.Institutions, c.CursorCodec),
		Transaction: handler.NewTransactionHandler(c.Transactions, c.CursorCodec),
		User:        handler.NewUserHandler(c.Users, c.CursorCodec),
	}
}
