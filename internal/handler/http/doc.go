// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the advertisement board.
//
// It wires the chi router, the request handlers and the middleware for
// request tracing, access logging and panic recovery. Every handler checks
// a request in a fixed order (body, credentials, existence, ownership,
// payload validation) before the service layer mutates anything.
package http
