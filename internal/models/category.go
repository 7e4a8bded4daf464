// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain structs shared by the store, service,
// and handler layers. Field tags describe the JSON wire shape.
package models

// Category groups posts. Categories are soft-deleted: deactivating one hides
// it from the API but never removes the row, and its name stays reserved by
// the unique constraint regardless of is_active.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
