// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"stockfolio/internal/config"
	"stockfolio/internal/logger"
	"stockfolio/models"
)

// eodLatestPath is the provider endpoint returning the most recent
// end-of-day quote for the requested symbols.
const eodLatestPath = "/v1/eod/latest"

// eodDateLayout matches the provider's ISO-8601 timestamps with a
// colon-less zone offset, e.g. "2023-05-01T00:00:00+0000".
const eodDateLayout = "2006-01-02T15:04:05-0700"

// eodResponse is the wire shape of the provider's end-of-day endpoint.
// Only the first element of Data is meaningful for a single-symbol lookup.
type eodResponse struct {
	Data []eodQuote `json:"data"`
}

// eodQuote is a single end-of-day entry as sent by the provider. Price and
// volume fields are pointers so that absent (or null) values survive
// decoding as nil and can be rejected in mapQuote instead of silently
// collapsing to zero. Volume is declared as eodVolume because the provider
// is inconsistent about sending it as a number or a quoted string.
type eodQuote struct {
	Symbol   string           `json:"symbol"`
	Open     *decimal.Decimal `json:"open"`
	High     *decimal.Decimal `json:"high"`
	Low      *decimal.Decimal `json:"low"`
	Close    *decimal.Decimal `json:"close"`
	Volume   *eodVolume       `json:"volume"`
	Exchange string           `json:"exchange"`
	Date     string           `json:"date"`
}

// eodVolume coerces the provider's volume field to an integer share count.
// Accepted wire forms: a JSON number (fractional values are truncated) or a
// quoted numeric string. Anything else is an error.
type eodVolume int64

func (v *eodVolume) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if raw == "" || raw == "null" {
		return fmt.Errorf("non-numeric volume %q", raw)
	}

	n, err := json.Number(raw).Int64()
	if err != nil {
		f, floatErr := json.Number(raw).Float64()
		if floatErr != nil {
			return fmt.Errorf("non-numeric volume %q", raw)
		}
		n = int64(f)
	}

	*v = eodVolume(n)
	return nil
}

type quoteProviderAdapter struct {
	client    *resty.Client
	accessKey string

	logger *logger.Logger
}

// NewQuoteProvider constructs an HTTP implementation of [QuoteProvider]
// talking to a marketstack-style end-of-day API.
//
// The client enforces cfg.Timeout on every request; a timed-out call is
// reported as [ErrProviderUnavailable] like any other transport failure.
func NewQuoteProvider(cfg config.Provider, logger *logger.Logger) QuoteProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &quoteProviderAdapter{
		client:    cli,
		accessKey: cfg.AccessKey,
		logger:    logger,
	}
}

// GetLatestEOD implements [QuoteProvider].
func (a *quoteProviderAdapter) GetLatestEOD(ctx context.Context, symbol string) (models.Quote, error) {
	log := logger.FromContext(ctx)

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("access_key", a.accessKey).
		SetQueryParam("symbols", symbol).
		Get(eodLatestPath)
	if err != nil {
		log.Err(err).Str("symbol", symbol).Msg("quote provider request failed")
		return models.Quote{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if !resp.IsSuccess() {
		log.Error().
			Str("symbol", symbol).
			Int("status", resp.StatusCode()).
			Msg("quote provider returned non-success status")
		return models.Quote{}, fmt.Errorf("%w: http %d", ErrProviderUnavailable, resp.StatusCode())
	}

	var payload eodResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Err(err).Str("symbol", symbol).Msg("failed to decode quote provider response")
		return models.Quote{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if len(payload.Data) == 0 {
		log.Error().Str("symbol", symbol).Msg("quote provider returned empty data array")
		return models.Quote{}, fmt.Errorf("%w: empty data array", ErrMalformedResponse)
	}

	return mapQuote(payload.Data[0])
}

// mapQuote converts the provider wire entry into the normalized
// [models.Quote], keeping only the calendar date of the trade timestamp.
//
// Entries with absent or null price/volume fields are rejected: a quote
// that lost its numbers on the wire must never be persisted as zeros.
func mapQuote(entry eodQuote) (models.Quote, error) {
	if entry.Symbol == "" {
		return models.Quote{}, fmt.Errorf("%w: missing symbol", ErrMalformedResponse)
	}

	if entry.Open == nil || entry.High == nil || entry.Low == nil || entry.Close == nil {
		return models.Quote{}, fmt.Errorf("%w: missing price fields", ErrMalformedResponse)
	}

	if entry.Volume == nil {
		return models.Quote{}, fmt.Errorf("%w: missing volume", ErrMalformedResponse)
	}

	tradeTime, err := time.Parse(eodDateLayout, entry.Date)
	if err != nil {
		return models.Quote{}, fmt.Errorf("%w: unparseable date %q: %w", ErrMalformedResponse, entry.Date, err)
	}

	year, month, day := tradeTime.Date()

	return models.Quote{
		Symbol:   entry.Symbol,
		Open:     *entry.Open,
		High:     *entry.High,
		Low:      *entry.Low,
		Close:    *entry.Close,
		Volume:   int64(*entry.Volume),
		Exchange: entry.Exchange,
		Date:     time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}, nil
}
