// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"errors"
	"fmt"
	"time"

	"inkpress/internal/models"
	"inkpress/internal/slug"
	"inkpress/internal/store"
)

// PostService implements the post CRUD operations. It derives slugs from
// titles, verifies category references through the CategoryService, and
// relies on the store's uniqueness enforcement for conflict detection.
type PostService struct {
	posts      store.Posts
	categories *CategoryService
}

// NewPostService returns a PostService backed by the given post store and
// category service.
func NewPostService(posts store.Posts, categories *CategoryService) *PostService {
	return &PostService{posts: posts, categories: categories}
}

// ListVisible returns all non-draft posts in store order.
func (s *PostService) ListVisible() ([]models.Post, error) {
	items, err := s.posts.ListVisible()
	if err != nil {
		return nil, fmt.Errorf("list visible posts: %w", err)
	}
	return items, nil
}

// GetVisibleByID returns the non-draft post with the given ID, or a
// NotFoundError when it does not exist among visible posts.
func (s *PostService) GetVisibleByID(id int64) (*models.Post, error) {
	p, err := s.posts.FindVisibleByID(id)
	if err != nil {
		return nil, fmt.Errorf("get visible post: %w", err)
	}
	if p == nil {
		return nil, &NotFoundError{Detail: "Post not found"}
	}
	return p, nil
}

// ListByCategory returns the non-draft posts of an active category. The
// category lookup's NotFoundError propagates as-is.
func (s *PostService) ListByCategory(categoryID int64) ([]models.Post, error) {
	if _, err := s.categories.GetActiveByID(categoryID); err != nil {
		return nil, err
	}

	items, err := s.posts.ListVisibleByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	return items, nil
}

// checkCategoryRef verifies that the payload's category reference names an
// active category. A miss is the client's fault, not a missing resource, so
// it surfaces as a BadRequestError rather than the lookup's NotFoundError.
func (s *PostService) checkCategoryRef(categoryID int64) error {
	_, err := s.categories.GetActiveByID(categoryID)
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return &BadRequestError{Detail: "The category doesn't exist"}
	}
	return err
}

// Create validates the payload, verifies the category reference, derives the
// slug from the title, and inserts the post with date_created set and
// date_updated absent. A duplicate title or slug is a ConflictError.
func (s *PostService) Create(in PostUpsert) (*models.Post, error) {
	if err := checkPayload(in); err != nil {
		return nil, err
	}
	if err := s.checkCategoryRef(in.CategoryID); err != nil {
		return nil, err
	}

	created, err := s.posts.Create(&models.Post{
		Title:       in.Title,
		Slug:        slug.Generate(in.Title),
		Content:     *in.Content,
		DateCreated: time.Now(),
		IsDraft:     in.IsDraft,
		CategoryID:  in.CategoryID,
	})
	if errors.Is(err, store.ErrConflict) {
		return nil, &ConflictError{Detail: "Post with this title already exists"}
	}
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

// Update overwrites every mutable field of a visible post, recomputing the
// slug from the new title and refreshing date_updated. Propagates
// NotFoundError from the lookup, BadRequestError from the category check,
// and maps store conflicts to ConflictError.
func (s *PostService) Update(id int64, in PostUpsert) (*models.Post, error) {
	if err := checkPayload(in); err != nil {
		return nil, err
	}

	p, err := s.GetVisibleByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategoryRef(in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	p.Title = in.Title
	p.Slug = slug.Generate(in.Title)
	p.Content = *in.Content
	p.IsDraft = in.IsDraft
	p.CategoryID = in.CategoryID
	p.DateUpdated = &now

	err = s.posts.Update(p)
	if errors.Is(err, store.ErrConflict) {
		return nil, &ConflictError{Detail: "Post with this title already exists"}
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

// SoftDelete flags a visible post as draft, keeping its record. The draft
// flag is the deletion marker; date_updated is refreshed like any mutation.
func (s *PostService) SoftDelete(id int64) error {
	p, err := s.GetVisibleByID(id)
	if err != nil {
		return err
	}

	now := time.Now()
	p.IsDraft = true
	p.DateUpdated = &now
	if err := s.posts.Update(p); err != nil {
		return fmt.Errorf("soft delete post: %w", err)
	}
	return nil
}

// SoftDeleteAll flags every visible post as draft in one logical operation.
func (s *PostService) SoftDeleteAll() error {
	if err := s.posts.MarkAllDraft(); err != nil {
		return fmt.Errorf("soft delete all posts: %w", err)
	}
	return nil
}
