package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a normalized end-of-day quote returned by the market-data
// provider adapter, decoupled from the provider's wire format.
type Quote struct {
	Symbol   string
	Open     decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Close    decimal.Decimal
	Volume   int64
	Exchange string

	// Date is the trade date with the time component dropped.
	Date time.Time
}
