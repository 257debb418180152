// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered account of the board.
// The password is never stored or exposed in plain text.
type User struct {
	// ID is assigned by the database on insert.
	ID int64 `json:"id"`

	// Created is set by the database and never changes afterwards.
	Created time.Time `json:"created"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// PwdHash is the lowercase hex digest of the password.
	PwdHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return `"user"`
}
