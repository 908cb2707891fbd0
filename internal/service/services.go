// SPDX-License-Identifier: Apache-2.0

package service

import (
	"stockfolio/internal/adapter"
	"stockfolio/internal/config"
	"stockfolio/internal/logger"
	"stockfolio/internal/store"
)

type Services struct {
	AuthService  AuthService
	StockService StockService
}

func NewServices(storages store.Storages, provider adapter.QuoteProvider, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.Auth, logger),
		StockService: NewStockService(storages.StockRepository, provider, logger),
	}
}
