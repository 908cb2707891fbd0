package adapter

import "errors"

// Sentinel errors returned by [QuoteProvider] implementations. Callers use
// [errors.Is] to distinguish transport failures from bad payloads; the
// underlying detail stays wrapped for server-side logging and is never
// shown to end users.
var (
	// ErrProviderUnavailable is returned when the quote provider cannot be
	// reached or answers with a non-2xx HTTP status.
	ErrProviderUnavailable = errors.New("quote provider unavailable")

	// ErrMalformedResponse is returned when the provider answers 2xx but
	// the body does not contain a usable quote.
	ErrMalformedResponse = errors.New("malformed quote provider response")
)
