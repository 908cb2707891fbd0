package store

import (
	"context"

	"stockfolio/models"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user account by email.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// StockRepository provides persistence for user-registered stocks.
type StockRepository interface {
	// CreateStock persists a new stock record owned by stock.UserID.
	// Returns ErrSymbolAlreadyExists when the symbol is already present
	// anywhere in the store.
	CreateStock(ctx context.Context, stock models.Stock) (models.Stock, error)

	// ListStocksByUser returns all stocks owned by the given user in
	// insertion order.
	ListStocksByUser(ctx context.Context, userID int64) ([]models.Stock, error)

	// GetStock retrieves a single stock by identifier.
	// Returns ErrStockNotFound when no such record exists.
	GetStock(ctx context.Context, stockID int64) (models.Stock, error)

	// DeleteStock removes the stock with the given identifier.
	// Returns ErrStockNotFound when no row was deleted.
	DeleteStock(ctx context.Context, stockID int64) error
}
