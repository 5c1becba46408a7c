// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Tag is a derived entry of the tag index. It is never persisted on its
// own: Name is the literal string appearing in article tag lists, Count
// the number of published articles using it, and ID a URL-safe slug of
// the name. A tag with no published usages simply does not exist.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
