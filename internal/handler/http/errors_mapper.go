// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-adv-board/internal/logger"
	"github.com/MKhiriev/go-adv-board/internal/service"
	"github.com/MKhiriev/go-adv-board/internal/store"
	"github.com/MKhiriev/go-adv-board/internal/validators"
	"github.com/MKhiriev/go-adv-board/models"
)

const authenticateHeaderValue = `Basic realm="adv-board"`

type errorMapping struct {
	target      error
	status      int
	description string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{target: errNoJSONData, status: http.StatusBadRequest, description: "There is no JSON data in the request"},
	{target: errInvalidJSON, status: http.StatusBadRequest, description: "Invalid JSON was passed"},
	{target: validators.ErrMalformedPayload, status: http.StatusBadRequest, description: "Invalid JSON was passed"},
	{target: errRouteNotFound, status: http.StatusNotFound, description: http.StatusText(http.StatusNotFound)},
	{target: errMethodNotAllowed, status: http.StatusMethodNotAllowed, description: http.StatusText(http.StatusMethodNotAllowed)},

	{target: service.ErrUnauthenticated, status: http.StatusUnauthorized, description: http.StatusText(http.StatusUnauthorized)},
	{target: service.ErrNotAdvertisementOwner, status: http.StatusForbidden, description: http.StatusText(http.StatusForbidden)},

	{target: store.ErrAdvertisementNotFound, status: http.StatusNotFound, description: "Advertisement with this id not found."},
	{target: store.ErrEmailAlreadyExists, status: http.StatusConflict, description: "User with this email already exists"},
	{target: store.ErrAdvertisementConflict, status: http.StatusBadRequest, description: http.StatusText(http.StatusBadRequest)},
}

// errorResponse turns err into a response. Validation failures are
// returned as the bare list of field errors, anything unknown as 500.
func (h *Handler) errorResponse(r *http.Request, err error) response {
	log := logger.FromRequest(r)

	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		log.Debug().Err(err).Msg("payload validation failed")
		return jsonResponse(http.StatusBadRequest, validationErrs)
	}

	status, description := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	resp := jsonResponse(status, models.NewErrorResponse(description))
	if status == http.StatusUnauthorized {
		resp.header = http.Header{}
		resp.header.Set("WWW-Authenticate", authenticateHeaderValue)
	}

	return resp
}

func statusFromError(err error) (int, string) {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return mapping.status, mapping.description
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
