package http

import (
	"errors"
	"net/http"

	"stockfolio/internal/adapter"
	"stockfolio/internal/service"
	"stockfolio/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotStockOwner:           http.StatusForbidden,

	store.ErrEmailAlreadyExists:  http.StatusConflict,
	store.ErrNoUserWasFound:      http.StatusUnauthorized,
	store.ErrSymbolAlreadyExists: http.StatusConflict,
	store.ErrStockNotFound:       http.StatusNotFound,

	adapter.ErrProviderUnavailable: http.StatusBadGateway,
	adapter.ErrMalformedResponse:   http.StatusBadGateway,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// userFacingMessages maps sentinel errors to the generic texts shown to end
// users. Anything not listed here is reported as the bare status text; the
// underlying detail stays in the server logs only.
var userFacingMessages = map[error]string{
	service.ErrInvalidDataProvided: "invalid data provided",
	service.ErrWrongPassword:       "invalid email/password",
	service.ErrNotStockOwner:       "stock belongs to another user",

	store.ErrEmailAlreadyExists:  "email already registered, log in instead",
	store.ErrNoUserWasFound:      "invalid email/password",
	store.ErrSymbolAlreadyExists: "stock is already tracked",
	store.ErrStockNotFound:       "stock not found",

	adapter.ErrProviderUnavailable: "quote provider is unavailable, try again later",
	adapter.ErrMalformedResponse:   "quote provider returned an unusable response",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range userFacingMessages {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(status)
}

// writeError maps err to its HTTP status and generic user-facing message
// and writes both to w.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, messageFromError(err, status), status)
}
