// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store is the persistence layer. It exposes one interface per
// entity with two interchangeable implementations: PostgreSQL-backed stores
// used in production and mutex-guarded in-memory stores used by tests.
//
// Lookup methods return (nil, nil) when no row matches; the service layer
// decides what a miss means. Writes that trip a uniqueness constraint return
// ErrConflict — uniqueness is enforced by the backend, not by pre-checks, so
// two racing writers resolve to one success and one conflict.
package store

import (
	"errors"

	"inkpress/internal/models"
)

// ErrConflict is returned when a write violates a uniqueness constraint
// (category name, post title, or post slug).
var ErrConflict = errors.New("unique constraint violated")

// Categories is the persistence surface for categories. Soft-deleted
// (inactive) categories are invisible to every method except Update, which
// is how deactivation itself is persisted.
type Categories interface {
	ListActive() ([]models.Category, error)
	FindActiveByID(id int64) (*models.Category, error)
	Create(c *models.Category) (*models.Category, error)
	Update(c *models.Category) error
}

// Posts is the persistence surface for posts. Draft posts are invisible to
// the list and find methods; Update persists the draft flag itself.
type Posts interface {
	ListVisible() ([]models.Post, error)
	FindVisibleByID(id int64) (*models.Post, error)
	ListVisibleByCategory(categoryID int64) ([]models.Post, error)
	Create(p *models.Post) (*models.Post, error)
	Update(p *models.Post) error
	// MarkAllDraft flags every visible post as draft in one statement.
	MarkAllDraft() error
}
