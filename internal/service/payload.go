// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CategoryUpsert is the input shape for category create and update.
type CategoryUpsert struct {
	Name string `json:"name" validate:"required,max=100"`
}

// PostUpsert is the input shape for post create and update. IsDraft defaults
// to false when absent from the request body. Content is a pointer so an
// absent key is rejected while the legal empty string passes.
type PostUpsert struct {
	Title      string  `json:"title" validate:"required,min=5,max=100"`
	Content    *string `json:"content" validate:"required,max=1000"`
	IsDraft    bool    `json:"is_draft"`
	CategoryID int64   `json:"category_id" validate:"required"`
}

// payloadValidator checks upsert payloads against the validate tags above.
// Field names in error details come from the json tags.
var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkPayload validates an upsert payload atomically: the first violated
// constraint rejects the whole request as a ValidationError.
func checkPayload(payload any) error {
	err := payloadValidator.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{Detail: describeFieldError(fieldErrs[0])}
	}
	return err
}

// describeFieldError renders one field violation as a human-readable detail.
func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
