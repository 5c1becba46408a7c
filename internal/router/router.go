// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains for the
// Inkwell CMS. Routes split into the public read-only API and the
// authenticated admin API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/session"
)

// loginRateLimit caps login attempts per client IP.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// New creates the configured Chi router with all middleware and route
// groups wired up. The returned rate limiter must be stopped on
// shutdown.
func New(sessions *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()
	loginLimiter := middleware.NewRateLimiter(loginRateLimit, loginRateWindow)

	// Global middleware.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessions))

	// Health check. No auth, no CSRF.
	r.Get("/health", healthHandler)

	// Public API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/articles", public.ListArticles)
		r.Get("/articles/{id}", public.GetArticle)
		r.Get("/categories", public.CategoryTree)
		r.Get("/categories/{id}/articles", public.CategoryArticles)
		r.Get("/tags", public.ListTags)
		r.Get("/tags/{slug}/articles", public.TagArticles)
	})

	// Admin API. CSRF protection on everything, auth where needed.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.CSRF)

		r.With(loginLimiter.Limit).Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)
		r.Get("/session", auth.Session)

		// 2FA enrolment and verification need a session but not a
		// completed second factor.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)
		})

		// Fully authenticated admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/dashboard", admin.Dashboard)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", admin.ListCategories)
				r.Get("/tree", admin.CategoryTree)
				r.Post("/", admin.CreateCategory)
				r.Put("/{id}", admin.UpdateCategory)
				r.Delete("/{id}", admin.DeleteCategory)
				r.Get("/{id}/can-delete", admin.CanDeleteCategory)
				r.Post("/{id}/move", admin.MoveCategory)
			})

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", admin.ListArticles)
				r.Post("/", admin.CreateArticle)
				r.Get("/{id}", admin.GetArticle)
				r.Put("/{id}", admin.UpdateArticle)
				r.Delete("/{id}", admin.DeleteArticle)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", admin.ListTags)
				r.Post("/rename", admin.RenameTag)
				r.Post("/merge", admin.MergeTags)
				r.Post("/delete", admin.DeleteTag)
			})
		})
	})

	return r, loginLimiter
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
