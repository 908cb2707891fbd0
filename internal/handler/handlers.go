// SPDX-License-Identifier: Apache-2.0

// Package handler aggregates the transport-level handlers of the
// application. The service currently exposes a single HTTP surface.
package handler

import (
	"stockfolio/internal/config"
	"stockfolio/internal/handler/http"
	"stockfolio/internal/logger"
	"stockfolio/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
