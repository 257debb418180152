// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Advertisement is a board entry owned by exactly one user.
type Advertisement struct {
	// ID is assigned by the database on insert.
	ID int64 `json:"id"`

	// Created is set by the database when the advertisement is stored.
	Created time.Time `json:"created"`

	// Title is a short required headline.
	Title string `json:"title"`

	// Description is optional free text; nil is serialized as JSON null.
	Description *string `json:"description"`

	// OwnerID references the user that created the advertisement.
	// It never changes after creation.
	OwnerID int64 `json:"owner_id"`
}

// TableName returns the name of the database table
// associated with the Advertisement model.
func (a Advertisement) TableName() string {
	return "advertisement"
}

// AdvertisementUpdate carries a partial update of an advertisement.
// A field that was absent from the request is left untouched.
type AdvertisementUpdate struct {
	Title       OptionalString `json:"title,omitzero" validate:"omitempty,max=50"`
	Description OptionalString `json:"description,omitzero"`
}

// IsEmpty reports whether no field was present in the update.
func (u AdvertisementUpdate) IsEmpty() bool {
	return !u.Title.Set && !u.Description.Set
}

// Assignments returns the column values for every present field.
// A present null maps to a nil value, i.e. SQL NULL.
func (u AdvertisementUpdate) Assignments() map[string]any {
	assignments := make(map[string]any, 2)
	if u.Title.Set {
		assignments["title"] = u.Title.Ptr()
	}
	if u.Description.Set {
		assignments["description"] = u.Description.Ptr()
	}

	return assignments
}
