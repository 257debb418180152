// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-adv-board/internal/logger"
	"github.com/MKhiriev/go-adv-board/internal/service"
	"github.com/MKhiriev/go-adv-board/internal/utils"
	"github.com/MKhiriev/go-adv-board/internal/validators"
)

// Handler serves the HTTP API. It keeps no per-request state.
type Handler struct {
	services  *service.Services
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
