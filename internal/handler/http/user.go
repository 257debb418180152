// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-adv-board/models"
)

// registerUser handles POST /api/user/.
func (h *Handler) registerUser(r *http.Request) response {
	ctx := r.Context()

	raw, err := readJSONObject(r)
	if err != nil {
		return h.errorResponse(r, err)
	}

	var req models.CreateUserRequest
	if err = h.validator.Bind(ctx, raw, &req); err != nil {
		return h.errorResponse(r, err)
	}

	id, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		return h.errorResponse(r, err)
	}

	return created(id)
}
