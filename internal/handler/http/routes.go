// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const advertisementIDParam = "adv_id"

// Init builds the router. The advertisement id segment only matches
// digits, so any other id falls through to the not-found handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, middleware.Recoverer)

	router.Post("/api/user/", h.handle(h.registerUser))

	router.Post("/api/adv/", h.handle(h.createAdvertisement))
	router.Get("/api/adv/{"+advertisementIDParam+":[0-9]+}", h.handle(h.getAdvertisement))
	router.Patch("/api/adv/{"+advertisementIDParam+":[0-9]+}", h.handle(h.updateAdvertisement))
	router.Delete("/api/adv/{"+advertisementIDParam+":[0-9]+}", h.handle(h.deleteAdvertisement))

	router.NotFound(h.handle(h.routeNotFound))
	router.MethodNotAllowed(h.handle(h.methodNotAllowed))

	return router
}
