// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"inkwell/internal/models"
	"inkwell/internal/slug"
)

// AllTags derives the tag index from the current snapshot: one entry per
// distinct tag string across published articles, counting how many
// published articles carry it. Unpublished articles never contribute, so
// a tag with no published usages does not appear at all. Entries come
// back in first-encounter order; callers wanting count order sort
// themselves.
func (s *Store) AllTags() []models.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	var names []string

	for i := range s.articles {
		a := &s.articles[i]
		if !a.Published {
			continue
		}
		for _, tag := range a.Tags {
			if _, seen := counts[tag]; !seen {
				names = append(names, tag)
			}
			counts[tag]++
		}
	}

	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, models.Tag{
			ID:    slug.ForTag(name),
			Name:  name,
			Count: counts[name],
		})
	}
	return tags
}
