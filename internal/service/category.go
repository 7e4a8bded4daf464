// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"errors"
	"fmt"

	"inkpress/internal/models"
	"inkpress/internal/store"
)

// CategoryService implements the category CRUD operations over any
// store.Categories implementation. Deletion is always soft: a category is
// deactivated, never removed, and deactivation does not cascade to posts.
type CategoryService struct {
	categories store.Categories
}

// NewCategoryService returns a CategoryService backed by the given store.
func NewCategoryService(categories store.Categories) *CategoryService {
	return &CategoryService{categories: categories}
}

// ListActive returns all active categories in store order.
func (s *CategoryService) ListActive() ([]models.Category, error) {
	items, err := s.categories.ListActive()
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	return items, nil
}

// GetActiveByID returns the active category with the given ID, or a
// NotFoundError when it does not exist or has been deactivated.
func (s *CategoryService) GetActiveByID(id int64) (*models.Category, error) {
	c, err := s.categories.FindActiveByID(id)
	if err != nil {
		return nil, fmt.Errorf("get active category: %w", err)
	}
	if c == nil {
		return nil, &NotFoundError{Detail: "Category doesn't exist"}
	}
	return c, nil
}

// Create validates the payload and inserts a new active category. A name
// collision with any existing category, active or not, is a ConflictError.
func (s *CategoryService) Create(in CategoryUpsert) (*models.Category, error) {
	if err := checkPayload(in); err != nil {
		return nil, err
	}

	created, err := s.categories.Create(&models.Category{Name: in.Name, IsActive: true})
	if errors.Is(err, store.ErrConflict) {
		return nil, &ConflictError{Detail: "Category with this name already exists"}
	}
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

// Update renames an active category. Propagates NotFoundError from the
// lookup and maps a name collision to a ConflictError.
func (s *CategoryService) Update(id int64, in CategoryUpsert) (*models.Category, error) {
	if err := checkPayload(in); err != nil {
		return nil, err
	}

	c, err := s.GetActiveByID(id)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	err = s.categories.Update(c)
	if errors.Is(err, store.ErrConflict) {
		return nil, &ConflictError{Detail: "Category with this name already exists"}
	}
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// SoftDelete deactivates an active category. Posts referencing it are left
// untouched; only their own draft flag hides them.
func (s *CategoryService) SoftDelete(id int64) error {
	c, err := s.GetActiveByID(id)
	if err != nil {
		return err
	}

	c.IsActive = false
	if err := s.categories.Update(c); err != nil {
		return fmt.Errorf("deactivate category: %w", err)
	}
	return nil
}
