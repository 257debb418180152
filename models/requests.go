// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateUserRequest is the registration payload.
// Unknown members are ignored.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=40"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreateAdvertisementRequest is the payload for a new advertisement.
// The owner is taken from the authenticated user, never from the body.
type CreateAdvertisementRequest struct {
	Title       string  `json:"title" validate:"required,max=50"`
	Description *string `json:"description,omitempty"`
}
