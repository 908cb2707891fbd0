// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"

	"stockfolio/internal/adapter"
	"stockfolio/internal/logger"
	"stockfolio/internal/store"
	"stockfolio/models"
)

// stockService is the concrete implementation of StockService. It combines
// the external quote provider with the StockRepository: adding a stock first
// fetches the latest end-of-day quote, then persists the snapshot for the
// requesting user.
type stockService struct {
	stockRepository store.StockRepository
	quoteProvider   adapter.QuoteProvider

	logger *logger.Logger
}

// NewStockService constructs a StockService wired to the given repository and
// quote provider.
func NewStockService(stockRepository store.StockRepository, quoteProvider adapter.QuoteProvider, logger *logger.Logger) StockService {
	return &stockService{
		stockRepository: stockRepository,
		quoteProvider:   quoteProvider,
		logger:          logger,
	}
}

// AddStock fetches the latest end-of-day quote for symbol and persists it as
// a stock owned by userID.
//
// The symbol is trimmed and upper-cased before the provider lookup, so "aapl"
// and "AAPL " resolve to the same ticker.
//
// Returns the persisted stock or:
//   - ErrInvalidDataProvided if the symbol is empty after trimming.
//   - A wrapped adapter error if the quote lookup fails (see
//     adapter.ErrProviderUnavailable, adapter.ErrMalformedResponse).
//   - A wrapped storage error if persistence fails (e.g. the symbol is
//     already tracked — see store.ErrSymbolAlreadyExists).
func (s *stockService) AddStock(ctx context.Context, userID int64, symbol string) (models.Stock, error) {
	log := logger.FromContext(ctx)

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		log.Error().Int64("user_id", userID).Msg("empty stock symbol provided")
		return models.Stock{}, ErrInvalidDataProvided
	}

	quote, err := s.quoteProvider.GetLatestEOD(ctx, symbol)
	if err != nil {
		log.Err(err).Str("symbol", symbol).Msg("quote lookup failed")
		return models.Stock{}, fmt.Errorf("quote lookup failed: %w", err)
	}

	stock := models.Stock{
		Symbol:   quote.Symbol,
		Open:     quote.Open,
		High:     quote.High,
		Low:      quote.Low,
		Close:    quote.Close,
		Volume:   quote.Volume,
		Exchange: quote.Exchange,
		Date:     quote.Date,
		UserID:   userID,
	}

	createdStock, err := s.stockRepository.CreateStock(ctx, stock)
	if err != nil {
		log.Err(err).Str("symbol", symbol).Int64("user_id", userID).Msg("stock creation ended with error")
		return models.Stock{}, fmt.Errorf("stock creation ended with error: %w", err)
	}

	return createdStock, nil
}

// ListStocks returns every stock owned by userID ordered by insertion.
func (s *stockService) ListStocks(ctx context.Context, userID int64) ([]models.Stock, error) {
	log := logger.FromContext(ctx)

	stocks, err := s.stockRepository.ListStocksByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("stock listing ended with error")
		return nil, fmt.Errorf("stock listing ended with error: %w", err)
	}

	return stocks, nil
}

// DeleteStock removes a stock by its ID after verifying that it belongs to
// userID.
//
// Returns nil on success or:
//   - A wrapped store.ErrStockNotFound if no stock with that ID exists.
//   - ErrNotStockOwner if the stock belongs to a different user.
func (s *stockService) DeleteStock(ctx context.Context, userID int64, stockID int64) error {
	log := logger.FromContext(ctx)

	stock, err := s.stockRepository.GetStock(ctx, stockID)
	if err != nil {
		log.Err(err).Int64("stock_id", stockID).Msg("stock lookup ended with error")
		return fmt.Errorf("stock lookup ended with error: %w", err)
	}

	if stock.UserID != userID {
		log.Error().
			Int64("stock_id", stockID).
			Int64("owner_id", stock.UserID).
			Int64("user_id", userID).
			Msg("stock deletion denied")
		return ErrNotStockOwner
	}

	if err := s.stockRepository.DeleteStock(ctx, stockID); err != nil {
		log.Err(err).Int64("stock_id", stockID).Msg("stock deletion ended with error")
		return fmt.Errorf("stock deletion ended with error: %w", err)
	}

	return nil
}
