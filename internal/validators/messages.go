// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// extractValidationErrors converts validator errors into client-facing
// field errors. The Type of every entry is the failed tag.
func extractValidationErrors(validationErrs validator.ValidationErrors) ValidationErrors {
	fieldErrors := make(ValidationErrors, 0, len(validationErrs))

	for _, err := range validationErrs {
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"
		case "min":
			msg = fmt.Sprintf("must be at least %s characters", err.Param())
		case "max":
			msg = fmt.Sprintf("must not exceed %s characters", err.Param())
		case "email":
			msg = "must be a valid email address"
		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("failed on %s:%s", err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("failed on %s", err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, FieldError{
			Field:   err.Field(),
			Message: msg,
			Type:    err.Tag(),
		})
	}

	return fieldErrors
}
