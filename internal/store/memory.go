// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"sort"
	"sync"
	"time"

	"inkpress/internal/models"
)

// MemoryCategoryStore is an in-memory Categories implementation with the
// same soft-delete and uniqueness semantics as the PostgreSQL store. IDs are
// assigned sequentially, so ascending-ID order matches insertion order.
type MemoryCategoryStore struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]models.Category
}

// NewMemoryCategoryStore returns an empty in-memory category store.
func NewMemoryCategoryStore() *MemoryCategoryStore {
	return &MemoryCategoryStore{items: make(map[int64]models.Category)}
}

// ListActive returns all active categories in insertion order.
func (s *MemoryCategoryStore) ListActive() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.Category
	for _, id := range s.sortedIDs() {
		if c := s.items[id]; c.IsActive {
			items = append(items, c)
		}
	}
	return items, nil
}

// FindActiveByID retrieves an active category by ID. Returns nil on a miss.
func (s *MemoryCategoryStore) FindActiveByID(id int64) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.items[id]
	if !ok || !c.IsActive {
		return nil, nil
	}
	return &c, nil
}

// Create inserts a new category. Returns ErrConflict if the name is already
// taken by any category, active or not.
func (s *MemoryCategoryStore) Create(c *models.Category) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTaken(c.Name, 0) {
		return nil, ErrConflict
	}

	s.seq++
	stored := *c
	stored.ID = s.seq
	s.items[stored.ID] = stored
	return &stored, nil
}

// Update overwrites an existing category. Returns ErrConflict when the new
// name collides with a different category.
func (s *MemoryCategoryStore) Update(c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTaken(c.Name, c.ID) {
		return ErrConflict
	}
	s.items[c.ID] = *c
	return nil
}

// nameTaken reports whether any category other than exceptID holds name.
// Callers must hold the lock.
func (s *MemoryCategoryStore) nameTaken(name string, exceptID int64) bool {
	for _, other := range s.items {
		if other.ID != exceptID && other.Name == name {
			return true
		}
	}
	return false
}

// sortedIDs returns all IDs ascending. Callers must hold the lock.
func (s *MemoryCategoryStore) sortedIDs() []int64 {
	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MemoryPostStore is an in-memory Posts implementation. Draft posts stay in
// the map, invisible to reads, mirroring the relational soft-delete.
type MemoryPostStore struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]models.Post
}

// NewMemoryPostStore returns an empty in-memory post store.
func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{items: make(map[int64]models.Post)}
}

// ListVisible returns all non-draft posts in insertion order.
func (s *MemoryPostStore) ListVisible() ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.Post
	for _, id := range s.sortedIDs() {
		if p := s.items[id]; !p.IsDraft {
			items = append(items, p)
		}
	}
	return items, nil
}

// ListVisibleByCategory returns all non-draft posts in the given category.
func (s *MemoryPostStore) ListVisibleByCategory(categoryID int64) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.Post
	for _, id := range s.sortedIDs() {
		if p := s.items[id]; !p.IsDraft && p.CategoryID == categoryID {
			items = append(items, p)
		}
	}
	return items, nil
}

// FindVisibleByID retrieves a non-draft post by ID. Returns nil on a miss.
func (s *MemoryPostStore) FindVisibleByID(id int64) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[id]
	if !ok || p.IsDraft {
		return nil, nil
	}
	return &p, nil
}

// Create inserts a new post. Returns ErrConflict when the title or slug is
// already taken.
func (s *MemoryPostStore) Create(p *models.Post) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.titleOrSlugTaken(p.Title, p.Slug, 0) {
		return nil, ErrConflict
	}

	s.seq++
	stored := *p
	stored.ID = s.seq
	s.items[stored.ID] = stored
	return &stored, nil
}

// Update overwrites an existing post. Returns ErrConflict on a title or
// slug collision with a different post.
func (s *MemoryPostStore) Update(p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.titleOrSlugTaken(p.Title, p.Slug, p.ID) {
		return ErrConflict
	}
	s.items[p.ID] = *p
	return nil
}

// MarkAllDraft flags every visible post as draft, refreshing date_updated.
func (s *MemoryPostStore) MarkAllDraft() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, p := range s.items {
		if !p.IsDraft {
			p.IsDraft = true
			p.DateUpdated = &now
			s.items[id] = p
		}
	}
	return nil
}

// titleOrSlugTaken reports whether any post other than exceptID holds the
// title or slug. Callers must hold the lock.
func (s *MemoryPostStore) titleOrSlugTaken(title, slug string, exceptID int64) bool {
	for _, other := range s.items {
		if other.ID != exceptID && (other.Title == title || other.Slug == slug) {
			return true
		}
	}
	return false
}

// sortedIDs returns all IDs ascending. Callers must hold the lock.
func (s *MemoryPostStore) sortedIDs() []int64 {
	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
