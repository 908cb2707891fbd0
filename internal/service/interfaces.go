// SPDX-License-Identifier: Apache-2.0

// Package service contains the business logic of the application: account
// registration and authentication, session token lifecycle, and the stock
// portfolio operations built on top of the store and adapter layers.
package service

import (
	"context"

	"stockfolio/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type StockService interface {
	AddStock(ctx context.Context, userID int64, symbol string) (models.Stock, error)
	ListStocks(ctx context.Context, userID int64) ([]models.Stock, error)
	DeleteStock(ctx context.Context, userID int64, stockID int64) error
}
