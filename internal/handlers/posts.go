// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/http"

	"inkpress/internal/models"
	"inkpress/internal/service"
)

// Posts groups the post CRUD handlers.
type Posts struct {
	service *service.PostService
}

// NewPosts creates the post handler group.
func NewPosts(svc *service.PostService) *Posts {
	return &Posts{service: svc}
}

// List handles GET /posts: all visible (non-draft) posts.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListVisible()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.Post{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /posts/{id}.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	p, err := h.service.GetVisibleByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ListByCategory handles GET /posts/category/{cat_id}: the visible posts of
// an active category.
func (h *Posts) ListByCategory(w http.ResponseWriter, r *http.Request) {
	catID, err := idParam(r, "cat_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items, err := h.service.ListByCategory(catID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.Post{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /posts.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	var in service.PostUpsert
	if err := decodeJSON(r, &in); err != nil {
		writeServiceError(w, err)
		return
	}

	created, err := h.service.Create(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /posts/{id}.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var in service.PostUpsert
	if err := decodeJSON(r, &in); err != nil {
		writeServiceError(w, err)
		return
	}

	updated, err := h.service.Update(id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /posts/{id}: soft delete by flagging as draft. The
// body is a bare JSON string acknowledgement.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.service.SoftDelete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fmt.Sprintf("Post %d was deleted!", id))
}

// DeleteAll handles DELETE /posts: flags every visible post as draft.
func (h *Posts) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SoftDeleteAll(); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "All posts deleted!")
}
