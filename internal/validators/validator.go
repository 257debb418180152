// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-adv-board/models"
)

// PayloadValidator validates the request models with go-playground/validator.
// It is safe for concurrent use.
type PayloadValidator struct {
	validate *validator.Validate
}

// NewPayloadValidator constructs a [PayloadValidator] that names fields by
// their JSON tags and understands [models.OptionalString].
func NewPayloadValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(optionalStringValue, models.OptionalString{})

	return &PayloadValidator{validate: v}
}

func (p *PayloadValidator) Validate(ctx context.Context, obj any) error {
	switch obj.(type) {
	case models.CreateUserRequest, *models.CreateUserRequest,
		models.CreateAdvertisementRequest, *models.CreateAdvertisementRequest,
		models.AdvertisementUpdate, *models.AdvertisementUpdate:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	err := p.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	return extractValidationErrors(validationErrs)
}

func (p *PayloadValidator) Bind(ctx context.Context, raw []byte, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return ValidationErrors{typeMismatch(typeErr)}
		}
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	return p.Validate(ctx, dst)
}

// jsonFieldName reports a struct field under its JSON member name.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// optionalStringValue exposes the string of a present, non-null
// OptionalString to the validator. Absent and null values are validated
// as nil, so "omitempty" skips them.
func optionalStringValue(field reflect.Value) any {
	opt, ok := field.Interface().(models.OptionalString)
	if !ok || !opt.Set || opt.Null {
		return nil
	}
	return opt.Value
}

func typeMismatch(typeErr *json.UnmarshalTypeError) FieldError {
	field := typeErr.Field
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}

	return FieldError{
		Field:   field,
		Message: "must be " + jsonTypeName(typeErr.Type),
		Type:    "type_error",
	}
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}

	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	case reflect.Pointer:
		return jsonTypeName(t.Elem())
	default:
		return "a valid " + t.String()
	}
}
