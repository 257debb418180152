// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	errNoJSONData       = errors.New("no JSON data in the request")
	errInvalidJSON      = errors.New("invalid JSON")
	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)
