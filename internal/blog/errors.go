// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import "errors"

// Sentinel errors returned by store mutations. Callers match them with
// errors.Is; the wrapped message carries the specific reason.
var (
	// ErrNotFound is returned by category mutations targeting an id that
	// does not exist. Article mutations deliberately do NOT return it:
	// updating or deleting an unknown article is a silent no-op.
	ErrNotFound = errors.New("category not found")

	// ErrHierarchyViolation is returned when deleting a category that
	// still has sub-categories or directly assigned articles.
	ErrHierarchyViolation = errors.New("category is still in use")

	// ErrCategoryConstraint is returned when an article create or update
	// references a main category (or no existing category at all).
	// Articles may only belong to sub-categories.
	ErrCategoryConstraint = errors.New("article category must be a sub-category")
)
