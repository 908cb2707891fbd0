// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockfolio/internal/config"
	"stockfolio/internal/logger"
	"stockfolio/internal/service"
	"stockfolio/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 42}, nil
}

// ─────────────────────────────────────────────
// Mock: service.StockService
// ─────────────────────────────────────────────

type mockStockService struct {
	addStockFn    func(ctx context.Context, userID int64, symbol string) (models.Stock, error)
	listStocksFn  func(ctx context.Context, userID int64) ([]models.Stock, error)
	deleteStockFn func(ctx context.Context, userID int64, stockID int64) error
}

func (m *mockStockService) AddStock(ctx context.Context, userID int64, symbol string) (models.Stock, error) {
	if m.addStockFn != nil {
		return m.addStockFn(ctx, userID, symbol)
	}
	return models.Stock{}, nil
}

func (m *mockStockService) ListStocks(ctx context.Context, userID int64) ([]models.Stock, error) {
	if m.listStocksFn != nil {
		return m.listStocksFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockStockService) DeleteStock(ctx context.Context, userID int64, stockID int64) error {
	if m.deleteStockFn != nil {
		return m.deleteStockFn(ctx, userID, stockID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(auth *mockAuthService, stocks *mockStockService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if stocks == nil {
		stocks = &mockStockService{}
	}

	return NewHandler(&service.Services{
		AuthService:  auth,
		StockService: stocks,
	}, logger.Nop())
}

// newTestServer spins up the full router so that middleware is exercised
// exactly as in production.
func newTestServer(t *testing.T, auth *mockAuthService, stocks *mockStockService) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(newTestHandler(auth, stocks).Init())
	t.Cleanup(srv.Close)

	return srv
}

// noRedirectClient returns an HTTP client that reports redirects instead of
// following them, so tests can assert on Location headers.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
		Timeout: 5 * time.Second,
	}
}

// realAuthService builds an AuthService backed by real JWT generation, for
// middleware tests that need verifiable tokens.
func realAuthService() service.AuthService {
	return service.NewAuthService(nil, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "stockfolio",
		TokenDuration: time.Hour,
	}, logger.Nop())
}
