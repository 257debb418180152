// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-adv-board/internal/store"
	"github.com/MKhiriev/go-adv-board/models"
)

const maxRequestBodySize = 1 << 20

// readJSONObject reads the request body and makes sure it holds a JSON
// object with at least one member. The raw bytes are returned so that the
// payload can be bound to a model once the request has passed the
// credential and ownership checks.
//
// An empty body, null and {} yield errNoJSONData. Anything that is not a
// JSON object yields errInvalidJSON.
func readJSONObject(r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	if len(raw) > maxRequestBodySize {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", errInvalidJSON, maxRequestBodySize)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errNoJSONData
	}

	var members map[string]json.RawMessage
	if err = json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	if len(members) == 0 {
		return nil, errNoJSONData
	}

	return raw, nil
}

// findAdvertisement resolves the {adv_id} route parameter. An id that does
// not fit into int64 cannot exist and is reported as not found.
func (h *Handler) findAdvertisement(ctx context.Context, r *http.Request) (models.Advertisement, error) {
	rawID := chi.URLParam(r, advertisementIDParam)

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return models.Advertisement{}, fmt.Errorf("advertisement %q: %w", rawID, store.ErrAdvertisementNotFound)
	}

	return h.services.AdvertisementService.GetAdvertisement(ctx, id)
}
