// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"time"

	"inkwell/internal/models"
)

// strPtr is a small helper for the seed's parent references.
func strPtr(s string) *string { return &s }

// seedTime is the fixed creation timestamp of all seed records.
var seedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// DefaultCategories is the built-in category set used when no snapshot
// exists yet. It forms a full two-level hierarchy so the site works out
// of the box: every main category has at least one sub-category, and
// only sub-categories carry articles.
func DefaultCategories() []models.Category {
	return []models.Category{
		{
			ID:          "1",
			Name:        "Travel",
			Description: "Trips, places, and food worth travelling for",
			Color:       "#F59E0B",
			Order:       1,
			CreatedAt:   seedTime,
		},
		{
			ID:          "2",
			Name:        "Technology",
			Description: "Latest tech trends and insights",
			Color:       "#3B82F6",
			Order:       2,
			CreatedAt:   seedTime,
		},
		{
			ID:          "11",
			Name:        "Fukuoka",
			Description: "Kyushu's food capital",
			Color:       "#EF4444",
			ParentID:    strPtr("1"),
			Order:       1,
			CreatedAt:   seedTime,
		},
		{
			ID:          "12",
			Name:        "Tokyo",
			Description: "City guides and neighbourhood walks",
			Color:       "#10B981",
			ParentID:    strPtr("1"),
			Order:       2,
			CreatedAt:   seedTime,
		},
		{
			ID:          "21",
			Name:        "Web Development",
			Description: "Frameworks, tooling, and the platform",
			Color:       "#8B5CF6",
			ParentID:    strPtr("2"),
			Order:       1,
			CreatedAt:   seedTime,
		},
		{
			ID:          "22",
			Name:        "Design",
			Description: "UI/UX design principles and trends",
			Color:       "#EC4899",
			ParentID:    strPtr("2"),
			Order:       2,
			CreatedAt:   seedTime,
		},
	}
}

// DefaultArticles is the built-in article set used when no snapshot
// exists yet. Every article references a sub-category.
func DefaultArticles() []models.Article {
	return []models.Article{
		{
			ID:    "101",
			Title: "Hidden Ramen Shops of Fukuoka",
			Content: `<h2>Beyond the Yatai</h2>
<p>Everyone knows the riverside food stalls, but Fukuoka's best tonkotsu hides in back streets and basement counters.</p>
<h3>Where to Start</h3>
<ul>
<li><strong>Hakata Station area</strong> - counter-only shops with decades-old broth</li>
<li><strong>Daimyo</strong> - the new wave, lighter bowls and thin noodles</li>
</ul>
<p>Go at lunch, order the kaedama refill, and skip the queue apps entirely.</p>`,
			Excerpt:    "A short guide to the tonkotsu counters locals actually queue for.",
			CategoryID: "11",
			Tags:       []string{"Ramen", "Travel"},
			Author:     "Alex Chen",
			CreatedAt:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Published:  true,
		},
		{
			ID:    "102",
			Title: "The Future of Web Development",
			Content: `<h2>Introduction</h2>
<p>Web development continues to evolve at a rapid pace. From new frameworks to emerging technologies, developers need to stay ahead of the curve.</p>
<h3>Key Technologies to Watch</h3>
<ul>
<li><strong>Server Components</strong> - rethinking where rendering happens</li>
<li><strong>WebAssembly</strong> - near-native performance in the browser</li>
<li><strong>Edge Computing</strong> - less latency through distribution</li>
</ul>
<blockquote>"The best way to predict the future is to invent it." - Alan Kay</blockquote>`,
			Excerpt:    "Explore the technologies that will define the next decade of the web.",
			CategoryID: "21",
			Tags:       []string{"React", "WebAssembly", "Future Tech"},
			Author:     "Sarah Johnson",
			CreatedAt:  time.Date(2024, 1, 12, 14, 30, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 12, 14, 30, 0, 0, time.UTC),
			Published:  true,
		},
		{
			ID:    "103",
			Title: "Mastering Modern CSS Grid",
			Content: `<h2>Understanding CSS Grid</h2>
<p>CSS Grid is the most powerful layout system available to web developers today: a two-dimensional system for rows and columns alike.</p>
<h3>Basic Grid Concepts</h3>
<ul>
<li><strong>Grid Container</strong> - the parent element with display: grid</li>
<li><strong>Grid Items</strong> - the direct children of the container</li>
<li><strong>Grid Lines</strong> - the dividing lines of the structure</li>
</ul>
<p>With these basics you can build layouts that older CSS made painful or impossible.</p>`,
			Excerpt:    "Learn how to create powerful, responsive layouts with CSS Grid.",
			CategoryID: "22",
			Tags:       []string{"CSS", "Layout", "Web Design"},
			Author:     "Mike Davis",
			CreatedAt:  time.Date(2024, 1, 10, 9, 15, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 10, 9, 15, 0, 0, time.UTC),
			Published:  true,
		},
	}
}
