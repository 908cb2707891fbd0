package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"stockfolio/internal/logger"
	"stockfolio/models"
)

// stockRepository is the PostgreSQL-backed implementation of
// [StockRepository]. It executes all stock CRUD operations against the
// "stocks" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, stock_id, symbol).
type stockRepository struct {
	*DB
	logger *logger.Logger
}

// NewStockRepository constructs a [StockRepository] backed by the provided
// database connection and logger.
func NewStockRepository(db *DB, logger *logger.Logger) StockRepository {
	logger.Debug().Msg("creating stock repository")
	return &stockRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateStock persists a new stock record and returns the fully populated
// [models.Stock] with server-assigned fields (StockID, CreatedAt).
//
// The INSERT is a single statement, so a constraint violation leaves the
// store unchanged: there is no partial write to roll back.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSymbolAlreadyExists].
//   - PostgreSQL foreign_key_violation (23503) → [ErrNoUserWasFound]
//     (the owning user does not exist).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *stockRepository) CreateStock(ctx context.Context, stock models.Stock) (models.Stock, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createStock,
		stock.Symbol,
		stock.Open,
		stock.High,
		stock.Low,
		stock.Close,
		stock.Volume,
		stock.Exchange,
		stock.Date,
		stock.UserID,
	)

	var created models.Stock
	if err := scanStock(row, &created); err != nil {
		log.Err(err).
			Str("func", "*stockRepository.CreateStock").
			Str("symbol", stock.Symbol).
			Int64("user_id", stock.UserID).
			Msg("error creating stock")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Stock{}, ErrSymbolAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Stock{}, ErrNoUserWasFound
		default:
			return models.Stock{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// ListStocksByUser returns every stock owned by the given user, ordered by
// stock_id (insertion order). An empty slice is returned when the user has
// no stocks.
func (r *stockRepository) ListStocksByUser(ctx context.Context, userID int64) ([]models.Stock, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStocksByUserQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "*stockRepository.ListStocksByUser").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*stockRepository.ListStocksByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing user stocks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stocks := make([]models.Stock, 0, 16)

	for rows.Next() {
		var stock models.Stock

		if scanErr := scanStock(rows, &stock); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*stockRepository.ListStocksByUser").
				Int64("user_id", userID).
				Msg("failed to scan stock row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		stocks = append(stocks, stock)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*stockRepository.ListStocksByUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return stocks, nil
}

// GetStock retrieves a single stock record by identifier.
//
// Error handling:
//   - sql.ErrNoRows → [ErrStockNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *stockRepository) GetStock(ctx context.Context, stockID int64) (models.Stock, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStockQuery(stockID)
	if err != nil {
		log.Err(err).
			Str("func", "*stockRepository.GetStock").
			Int64("stock_id", stockID).
			Msg("failed to build query")
		return models.Stock{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stock models.Stock
	if err := scanStock(r.DB.QueryRowContext(ctx, query, args...), &stock); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Stock{}, ErrStockNotFound
		}

		log.Err(err).
			Str("func", "*stockRepository.GetStock").
			Int64("stock_id", stockID).
			Msg("error getting stock")
		return models.Stock{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return stock, nil
}

// DeleteStock removes the stock with the given identifier.
//
// Error handling:
//   - zero affected rows → [ErrStockNotFound], store left unchanged.
//   - Any driver-level error → wrapped with [ErrExecutingStatement].
func (r *stockRepository) DeleteStock(ctx context.Context, stockID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteStockQuery(stockID)
	if err != nil {
		log.Err(err).
			Str("func", "*stockRepository.DeleteStock").
			Int64("stock_id", stockID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*stockRepository.DeleteStock").
			Int64("stock_id", stockID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*stockRepository.DeleteStock").
			Int64("stock_id", stockID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrStockNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows so scanStock can serve both
// single-row and multi-row queries.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanStock scans one row of [stockColumns] into dst.
func scanStock(row rowScanner, dst *models.Stock) error {
	return row.Scan(
		&dst.StockID,
		&dst.Symbol,
		&dst.Open,
		&dst.High,
		&dst.Low,
		&dst.Close,
		&dst.Volume,
		&dst.Exchange,
		&dst.Date,
		&dst.UserID,
		&dst.CreatedAt,
	)
}
