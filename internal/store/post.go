// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"inkpress/internal/models"
)

// PostStore manages posts in PostgreSQL.
type PostStore struct {
	db *sql.DB
}

// NewPostStore returns a new PostStore.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, slug, content, date_created, date_updated, is_draft, category_id`

// scanPost scans a row into a Post struct.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content,
		&p.DateCreated, &p.DateUpdated, &p.IsDraft, &p.CategoryID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListVisible returns all non-draft posts in table order.
func (s *PostStore) ListVisible() ([]models.Post, error) {
	rows, err := s.db.Query(`SELECT ` + postColumns + ` FROM posts WHERE NOT is_draft`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListVisibleByCategory returns all non-draft posts in the given category.
func (s *PostStore) ListVisibleByCategory(categoryID int64) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT `+postColumns+` FROM posts
		WHERE category_id = $1 AND NOT is_draft
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// collectPosts drains a result set into a slice.
func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	var items []models.Post
	for rows.Next() {
		var p models.Post
		err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Content,
			&p.DateCreated, &p.DateUpdated, &p.IsDraft, &p.CategoryID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// FindVisibleByID retrieves a non-draft post by ID. Returns nil if no such
// post exists among visible posts.
func (s *PostStore) FindVisibleByID(id int64) (*models.Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = $1 AND NOT is_draft`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// Create inserts a new post and returns it with the generated ID.
// Returns ErrConflict when the title or slug is already taken.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	row := s.db.QueryRow(`
		INSERT INTO posts (title, slug, content, date_created, date_updated, is_draft, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Content, p.DateCreated, p.DateUpdated, p.IsDraft, p.CategoryID,
	)
	result, err := scanPost(row)
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return result, nil
}

// Update persists every mutable field of an existing post, including the
// draft flag. Returns ErrConflict on a title or slug collision.
func (s *PostStore) Update(p *models.Post) error {
	_, err := s.db.Exec(`
		UPDATE posts SET
			title = $1, slug = $2, content = $3, date_updated = $4,
			is_draft = $5, category_id = $6
		WHERE id = $7
	`, p.Title, p.Slug, p.Content, p.DateUpdated, p.IsDraft, p.CategoryID, p.ID)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// MarkAllDraft flags every visible post as draft in a single statement,
// refreshing date_updated on each affected row.
func (s *PostStore) MarkAllDraft() error {
	_, err := s.db.Exec(`
		UPDATE posts SET is_draft = TRUE, date_updated = NOW() WHERE NOT is_draft
	`)
	if err != nil {
		return fmt.Errorf("mark all posts draft: %w", err)
	}
	return nil
}
