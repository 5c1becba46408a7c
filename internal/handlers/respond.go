// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Inkwell CMS API.
// Handlers are grouped by concern (admin, public, auth) and receive
// their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inkwell/internal/blog"
)

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// errorBody is the uniform error response shape.
type errorBody struct {
	Error string `json:"error"`
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorBody{Error: msg})
}

// respondBlogError maps core store errors onto HTTP statuses: constraint
// and hierarchy violations are conflicts the client must resolve,
// unknown ids are 404.
func respondBlogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, blog.ErrHierarchyViolation):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, blog.ErrCategoryConstraint):
		respondError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("unexpected store error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads the request body into v, answering false (and a 400)
// when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
