// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides validation of inbound JSON payloads.
//
// Rules are declared with `validate` struct tags on the request models and
// enforced by go-playground/validator. Failures are reported as
// [ValidationErrors], a list of field-level problems named by their JSON
// member names, so that handlers can return them to the client as is.
package validators

import "context"

// Validator checks request payloads.
type Validator interface {
	// Validate checks obj against its struct tags.
	// Only the request models of this service are supported.
	Validate(ctx context.Context, obj any) error

	// Bind decodes raw JSON into dst, a pointer to a request model, and
	// validates the result. JSON type mismatches are reported as
	// [ValidationErrors] as well.
	Bind(ctx context.Context, raw []byte, dst any) error
}
