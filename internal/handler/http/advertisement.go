// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-adv-board/models"
)

// createAdvertisement handles POST /api/adv/. The authenticated user
// becomes the owner.
func (h *Handler) createAdvertisement(r *http.Request) response {
	ctx := r.Context()

	raw, err := readJSONObject(r)
	if err != nil {
		return h.errorResponse(r, err)
	}

	user, err := h.services.AuthService.Authenticate(ctx, r.Header.Get("Authorization"))
	if err != nil {
		return h.errorResponse(r, err)
	}

	var req models.CreateAdvertisementRequest
	if err = h.validator.Bind(ctx, raw, &req); err != nil {
		return h.errorResponse(r, err)
	}

	id, err := h.services.AdvertisementService.CreateAdvertisement(ctx, user, req)
	if err != nil {
		return h.errorResponse(r, err)
	}

	return created(id)
}

// getAdvertisement handles GET /api/adv/{adv_id}. No credentials needed.
func (h *Handler) getAdvertisement(r *http.Request) response {
	adv, err := h.findAdvertisement(r.Context(), r)
	if err != nil {
		return h.errorResponse(r, err)
	}

	return jsonResponse(http.StatusOK, adv)
}

// updateAdvertisement handles PATCH /api/adv/{adv_id}. Only the members
// present in the body are changed.
func (h *Handler) updateAdvertisement(r *http.Request) response {
	ctx := r.Context()

	raw, err := readJSONObject(r)
	if err != nil {
		return h.errorResponse(r, err)
	}

	user, err := h.services.AuthService.Authenticate(ctx, r.Header.Get("Authorization"))
	if err != nil {
		return h.errorResponse(r, err)
	}

	adv, err := h.findAdvertisement(ctx, r)
	if err != nil {
		return h.errorResponse(r, err)
	}

	if err = h.services.AdvertisementService.CheckOwnership(ctx, adv, user); err != nil {
		return h.errorResponse(r, err)
	}

	var update models.AdvertisementUpdate
	if err = h.validator.Bind(ctx, raw, &update); err != nil {
		return h.errorResponse(r, err)
	}

	if err = h.services.AdvertisementService.UpdateAdvertisement(ctx, adv.ID, update); err != nil {
		return h.errorResponse(r, err)
	}

	return noContent()
}

// deleteAdvertisement handles DELETE /api/adv/{adv_id}.
func (h *Handler) deleteAdvertisement(r *http.Request) response {
	ctx := r.Context()

	user, err := h.services.AuthService.Authenticate(ctx, r.Header.Get("Authorization"))
	if err != nil {
		return h.errorResponse(r, err)
	}

	adv, err := h.findAdvertisement(ctx, r)
	if err != nil {
		return h.errorResponse(r, err)
	}

	if err = h.services.AdvertisementService.CheckOwnership(ctx, adv, user); err != nil {
		return h.errorResponse(r, err)
	}

	if err = h.services.AdvertisementService.DeleteAdvertisement(ctx, adv.ID); err != nil {
		return h.errorResponse(r, err)
	}

	return noContent()
}
