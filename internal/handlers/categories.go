// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"inkpress/internal/models"
	"inkpress/internal/service"
)

// Categories groups the category CRUD handlers.
type Categories struct {
	service *service.CategoryService
}

// NewCategories creates the category handler group.
func NewCategories(svc *service.CategoryService) *Categories {
	return &Categories{service: svc}
}

// List handles GET /categories: all active categories.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListActive()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /categories.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CategoryUpsert
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

// Get handles GET /categories/{id}.
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	c, err := h.service.GetActiveByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Update handles PUT /categories/{id}.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var in service.CategoryUpsert
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

// Delete handles DELETE /categories/{id}: soft delete by deactivation.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.service.SoftDelete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detailResponse{Detail: "Category was deleted"})
}
