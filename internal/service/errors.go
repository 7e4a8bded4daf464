// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package service carries the business rules for categories and posts:
// payload validation, active-only and non-draft-only filtering, the
// cross-entity category check, slug derivation, and conflict mapping.
//
// Outcomes a client can cause are typed errors defined here; handlers map
// them to HTTP statuses with errors.As. Anything else that goes wrong is an
// internal fault and propagates unwrapped.
package service

// ValidationError reports a payload that failed field-level constraints.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

// NotFoundError reports that the addressed record does not exist or is
// soft-deleted.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }

// BadRequestError reports a payload whose foreign reference fails a business
// precondition, such as naming an inactive category.
type BadRequestError struct {
	Detail string
}

func (e *BadRequestError) Error() string { return e.Detail }

// ConflictError reports a write rejected by a uniqueness constraint.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string { return e.Detail }
