// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-adv-board/internal/config"
	"github.com/MKhiriev/go-adv-board/internal/handler/http"
	"github.com/MKhiriev/go-adv-board/internal/logger"
	"github.com/MKhiriev/go-adv-board/internal/service"
	"github.com/MKhiriev/go-adv-board/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg.
func NewHandlers(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validator, logger),
	}, nil
}
