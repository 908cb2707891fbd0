package http

import (
	"context"
	"net/http"
	"strings"

	"stockfolio/internal/logger"
	"stockfolio/internal/utils"
)

// sessionCookieName is the cookie carrying the signed session token. It is
// set on successful registration and login and cleared on logout.
const sessionCookieName = "session_token"

// auth is an HTTP middleware that enforces session authentication.
//
// It resolves the session token from the "session_token" cookie or, failing
// that, from the "Authorization: Bearer" header, validates it via
// [service.AuthService.ParseToken], and — on success — stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// Requests without a usable token are rejected with HTTP 401 Unauthorized.
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("unauthenticated request rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authOrRedirect behaves like auth but sends unauthenticated visitors to the
// login page instead of rejecting them. It guards the home view only.
func (h *Handler) authOrRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("unauthenticated visitor redirected to login")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate resolves and validates the session token of r and returns a
// request context enriched with the authenticated user's ID.
func (h *Handler) authenticate(r *http.Request) (context.Context, error) {
	tokenString, err := getSessionToken(r)
	if err != nil {
		return nil, err
	}

	ctx := r.Context()
	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	// Store the authenticated user's ID in the context so that downstream
	// handlers can retrieve it without re-parsing the token.
	return context.WithValue(ctx, utils.UserIDCtxKey, token.UserID), nil
}

// getSessionToken extracts the raw session token from the request.
//
// The "session_token" cookie takes precedence; when it is absent the
// standard "Authorization: <scheme> <token>" header is consulted.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionToken] — neither a cookie nor an Authorization header is
//     present.
//   - [ErrInvalidAuthorizationHeader] — the header contains fewer than two
//     space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — a cookie or header part exists but is empty.
func getSessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if cookie.Value == "" {
			return "", ErrEmptyToken
		}
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
