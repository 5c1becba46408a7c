// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persisted blog entities and the derived view
// types built from them. Field names in the JSON tags are the wire format
// used for durable snapshots, so they must stay stable.
package models

import "time"

// Category is a node in the two-level category hierarchy. A category
// without a ParentID is a main category; one with a ParentID is a
// sub-category of that main category. Only sub-categories may own
// articles.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	ParentID    *string   `json:"parentId,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsMain reports whether the category is a root of the hierarchy.
func (c *Category) IsMain() bool {
	return c.ParentID == nil
}

// CategoryNode is one entry of the derived category tree. Children of a
// sub-category are always empty; the hierarchy is exactly two levels deep.
type CategoryNode struct {
	Category Category       `json:"category"`
	Children []CategoryNode `json:"children"`
}
