// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON HTTP handlers for the inkpress API.
// Handlers are grouped by entity and receive their service through the
// handler struct; respond.go maps service outcomes onto statuses and bodies.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/service"
)

// detailResponse is the JSON body for every non-2xx outcome and for the
// category delete acknowledgement.
type detailResponse struct {
	Detail string `json:"detail"`
}

// writeJSON serializes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// validation 422, not-found 404, bad reference and conflict 400. Anything
// unrecognized is an internal fault and becomes a logged 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		validation *service.ValidationError
		notFound   *service.NotFoundError
		badRequest *service.BadRequestError
		conflict   *service.ConflictError
	)
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusUnprocessableEntity, detailResponse{Detail: validation.Detail})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, detailResponse{Detail: notFound.Detail})
	case errors.As(err, &badRequest):
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: badRequest.Detail})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: conflict.Detail})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: "Internal Server Error"})
	}
}

// decodeJSON parses the request body into v. A malformed body is the
// client's problem and is reported as a ValidationError (422), the same
// outcome as a field constraint violation.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &service.ValidationError{Detail: "invalid JSON body"}
	}
	return nil
}

// idParam parses the named chi URL parameter as an integer ID.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, &service.ValidationError{Detail: name + " must be an integer"}
	}
	return id, nil
}
