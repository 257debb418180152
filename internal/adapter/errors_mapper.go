// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-adv-board/internal/validators"
	"github.com/MKhiriev/go-adv-board/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := bytes.TrimSpace(resp.Body())

	if resp.StatusCode() == http.StatusBadRequest && bytes.HasPrefix(body, []byte("[")) {
		var fields validators.ValidationErrors
		if err := json.Unmarshal(body, &fields); err == nil {
			return &ValidationError{Fields: fields}
		}
	}

	description := errorDescription(resp.StatusCode(), body)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, description)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, description)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, description)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, description)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, description)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, description)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), description)
	}
}

// errorDescription prefers the description of a JSON error body and falls
// back to the raw body or the status text.
func errorDescription(status int, body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Description != "" {
		return errResp.Description
	}
	if len(body) > 0 {
		return string(body)
	}
	return http.StatusText(status)
}
