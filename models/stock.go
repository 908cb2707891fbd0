package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock is a persisted end-of-day quote registered by a user.
//
// Prices are stored as NUMERIC in the database and carried as
// decimal.Decimal in code to avoid binary floating point drift.
// The symbol is unique across the whole store, not per user: a second
// insert of an existing symbol fails regardless of who owns the first
// row. See the stocks table migration.
type Stock struct {
	// StockID is the server-assigned identifier of the record.
	StockID int64 `json:"id"`

	// Symbol is the ticker symbol, e.g. "AAPL". Unique store-wide.
	Symbol string `json:"symbol"`

	Open  decimal.Decimal `json:"open"`
	High  decimal.Decimal `json:"high"`
	Low   decimal.Decimal `json:"low"`
	Close decimal.Decimal `json:"close"`

	// Volume is the number of shares traded during the period.
	Volume int64 `json:"volume"`

	// Exchange is the exchange code reported by the provider, e.g. "NASDAQ".
	Exchange string `json:"exchange"`

	// Date is the trade date of the quote. Only the calendar date is
	// meaningful; the time component is always midnight UTC.
	Date time.Time `json:"date"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the record was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Stock model.
func (s Stock) TableName() string {
	return "stocks"
}
