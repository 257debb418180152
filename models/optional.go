// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// OptionalString distinguishes a JSON member that is absent, present with
// null, or present with a string value.
//
// The zero value is "absent". Decoding a member always sets Set, so a
// struct field of this type keeps the zero value only when the member was
// missing from the document.
type OptionalString struct {
	Value string
	Set   bool
	Null  bool
}

// NewOptionalString returns a present, non-null value.
func NewOptionalString(v string) OptionalString {
	return OptionalString{Value: v, Set: true}
}

// NullString returns a present null value.
func NullString() OptionalString {
	return OptionalString{Set: true, Null: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		o.Value = ""
		return nil
	}

	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON implements json.Marshaler. Absent and null values are both
// written as null; use the omitzero tag option to drop absent members.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns a pointer to the value, or nil when the value is absent or null.
func (o OptionalString) Ptr() *string {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}
