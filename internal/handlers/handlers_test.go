// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/blog"
	"inkwell/internal/kv"
)

// newTestBlog returns a blog store loaded with the seed data: six
// categories ("1", "2" main; "11", "12", "21", "22" subs) and three
// published articles ("101" in "11", "102" in "21", "103" in "22").
func newTestBlog(t *testing.T) *blog.Store {
	t.Helper()
	store := blog.New(kv.NewMemory())
	store.Load(context.Background())
	return store
}

// doJSON invokes a handler with a JSON body and optional chi URL params.
func doJSON(h http.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// decodeBody unmarshals a recorded JSON response into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
}
