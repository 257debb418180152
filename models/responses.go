// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorStatus is the value of ErrorResponse.Status for every failure.
const ErrorStatus = "error"

// CreatedResponse is returned with 201 when a record is stored.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// ErrorResponse is the body of every non-validation failure.
type ErrorResponse struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// NewErrorResponse builds an ErrorResponse with the error status.
func NewErrorResponse(description string) ErrorResponse {
	return ErrorResponse{Status: ErrorStatus, Description: description}
}
