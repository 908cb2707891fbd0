// Package adapter implements outbound integrations with external services.
// Its single concern is the end-of-day quote provider used during stock
// ingestion.
package adapter

import (
	"context"

	"stockfolio/models"
)

// QuoteProvider fetches end-of-day market data for ticker symbols from an
// external HTTP API.
type QuoteProvider interface {
	// GetLatestEOD returns the latest end-of-day quote for symbol.
	//
	// Failure modes:
	//   - ErrProviderUnavailable — transport error, timeout, or any
	//     non-2xx HTTP status from the provider.
	//   - ErrMalformedResponse — a 2xx response whose body cannot be
	//     mapped to a quote (bad JSON, empty data array, missing or null
	//     price/volume fields, unparseable volume or date).
	GetLatestEOD(ctx context.Context, symbol string) (models.Quote, error)
}
