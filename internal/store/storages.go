package store

import (
	"context"
	"fmt"

	"stockfolio/internal/config"
	"stockfolio/internal/logger"
)

// Storages bundles all repositories backed by the shared database
// connection for injection into the service layer.
type Storages struct {
	UserRepository  UserRepository
	StockRepository StockRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		StockRepository: NewStockRepository(db, log),
	}, nil
}
