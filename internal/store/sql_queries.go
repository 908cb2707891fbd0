package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash, first_name, last_name)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, first_name, last_name, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, first_name, last_name, created_at
    FROM users
    WHERE email = $1;`

	createStock = `INSERT INTO stocks (symbol, open, high, low, close, volume, exchange, trade_date, user_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING stock_id, symbol, open, high, low, close, volume, exchange, trade_date, user_id, created_at;`
)

// stockColumns is the canonical column order shared by every stock query;
// scan destinations must follow it.
var stockColumns = []string{
	"stock_id", "symbol", "open", "high", "low", "close",
	"volume", "exchange", "trade_date", "user_id", "created_at",
}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListStocksByUserQuery builds the SELECT returning all stocks owned by
// userID, ordered by stock_id so listings are deterministic (insertion order).
func buildListStocksByUserQuery(userID int64) (string, []any, error) {
	return psql.Select(stockColumns...).
		From("stocks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("stock_id ASC").
		ToSql()
}

// buildGetStockQuery builds the SELECT fetching a single stock by identifier.
func buildGetStockQuery(stockID int64) (string, []any, error) {
	return psql.Select(stockColumns...).
		From("stocks").
		Where(sq.Eq{"stock_id": stockID}).
		ToSql()
}

// buildDeleteStockQuery builds the DELETE removing a single stock by identifier.
func buildDeleteStockQuery(stockID int64) (string, []any, error) {
	return psql.Delete("stocks").
		Where(sq.Eq{"stock_id": stockID}).
		ToSql()
}
