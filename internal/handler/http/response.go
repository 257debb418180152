// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-adv-board/internal/logger"
	"github.com/MKhiriev/go-adv-board/internal/utils"
	"github.com/MKhiriev/go-adv-board/models"
)

// response is the outcome of a route. A nil body means the status is
// written without a body.
type response struct {
	status int
	body   any
	header http.Header
}

// route handles one request and describes the response to write.
type route func(r *http.Request) response

func jsonResponse(status int, body any) response {
	return response{status: status, body: body}
}

func created(id int64) response {
	return jsonResponse(http.StatusCreated, models.CreatedResponse{ID: id})
}

func noContent() response {
	return response{status: http.StatusNoContent}
}

// handle adapts a route to [http.HandlerFunc] and renders its response.
func (h *Handler) handle(fn route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := fn(r)

		for name, values := range resp.header {
			for _, value := range values {
				w.Header().Add(name, value)
			}
		}

		if resp.body == nil {
			utils.WriteEmpty(w, resp.status)
			return
		}

		if _, err := utils.WriteJSON(w, resp.body, resp.status); err != nil {
			logger.FromRequest(r).Err(err).Int("status", resp.status).Msg("error writing response")
		}
	}
}

func (h *Handler) routeNotFound(r *http.Request) response {
	return h.errorResponse(r, errRouteNotFound)
}

func (h *Handler) methodNotAllowed(r *http.Request) response {
	return h.errorResponse(r, errMethodNotAllowed)
}
