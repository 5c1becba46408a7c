// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Article is a blog post. Content is an opaque HTML (or Markdown)
// string produced by the editor; the core never interprets it beyond
// excerpt derivation. CategoryID must always reference a sub-category.
type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt,omitempty"`
	CategoryID string    `json:"categoryId"`
	Tags       []string  `json:"tags"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Published  bool      `json:"published"`
}

// HasTag reports whether the article's tag list contains the given tag.
// Matching is exact and case-sensitive.
func (a *Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
