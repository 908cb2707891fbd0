// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockfolio/internal/logger"
	"stockfolio/internal/service"
	"stockfolio/models"
)

// newSessionServer runs the router against an AuthService backed by real
// token generation, so the middleware verifies genuine signatures.
func newSessionServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	auth := realAuthService()
	token, err := auth.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	handler := NewHandler(&service.Services{
		AuthService:  auth,
		StockService: &mockStockService{},
	}, logger.Nop())

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return srv, token.SignedString
}

func TestAuth_CookieSession(t *testing.T) {
	srv, tokenString := newSessionServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tokenString})

	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_BearerSession(t *testing.T) {
	srv, tokenString := newSessionServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tokenString)

	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_HomeRedirectsWhenUnauthenticated(t *testing.T) {
	srv, _ := newSessionServer(t)

	resp, err := noRedirectClient().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAuth_ProtectedRoutesRejectWhenUnauthenticated(t *testing.T) {
	srv, _ := newSessionServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/logout"},
		{method: http.MethodGet, path: "/add_stock"},
		{method: http.MethodPost, path: "/add_stock"},
		{method: http.MethodGet, path: "/delete?id=1"},
	}

	for _, p := range paths {
		req, err := http.NewRequest(p.method, srv.URL+p.path, nil)
		require.NoError(t, err)

		resp, err := noRedirectClient().Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	srv, _ := newSessionServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/add_stock", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not.a.token"})

	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_MalformedAuthorizationHeader(t *testing.T) {
	srv, _ := newSessionServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/add_stock", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer")

	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetSessionToken(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(r *http.Request)
		wantToken string
		wantErr   error
	}{
		{
			name: "cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "abc"})
			},
			wantToken: "abc",
		},
		{
			name: "bearer header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer abc")
			},
			wantToken: "abc",
		},
		{
			name: "cookie wins over header",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "from-cookie"})
				r.Header.Set("Authorization", "Bearer from-header")
			},
			wantToken: "from-cookie",
		},
		{
			name:    "nothing provided",
			setup:   func(_ *http.Request) {},
			wantErr: ErrNoSessionToken,
		},
		{
			name: "empty cookie value",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: ""})
			},
			wantErr: ErrEmptyToken,
		},
		{
			name: "header without token part",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer")
			},
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name: "header with empty token",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer ")
			},
			wantErr: ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)

			token, err := getSessionToken(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
