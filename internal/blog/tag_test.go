// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"testing"
)

// tagByName finds an entry of the derived index, or nil.
func tagByName(s *Store, name string) *int {
	for _, tag := range s.AllTags() {
		if tag.Name == name {
			count := tag.Count
			return &count
		}
	}
	return nil
}

func TestAllTags_Counts(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// Second published article tagged Ramen: Ramen appears in two
	// published articles, Travel in one.
	if _, err := s.AddArticle(ctx, ArticleInput{
		Title: "Instant Ramen, Ranked", CategoryID: "21",
		Tags: []string{"Ramen"}, Published: true,
	}); err != nil {
		t.Fatal(err)
	}

	if got := tagByName(s, "Ramen"); got == nil || *got != 2 {
		t.Errorf("Ramen count = %v, want 2", got)
	}
	if got := tagByName(s, "Travel"); got == nil || *got != 1 {
		t.Errorf("Travel count = %v, want 1", got)
	}
}

func TestAllTags_NeverZeroAndSumMatches(t *testing.T) {
	s, _ := newTestStore(t)

	pairs := 0
	for _, a := range s.PublishedArticles() {
		pairs += len(a.Tags)
	}

	sum := 0
	for _, tag := range s.AllTags() {
		if tag.Count == 0 {
			t.Errorf("tag %q has zero count", tag.Name)
		}
		sum += tag.Count
	}
	if sum != pairs {
		t.Errorf("count sum = %d, want %d (article,tag) pairs", sum, pairs)
	}
}

func TestAllTags_UnpublishedExcluded(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if _, err := s.AddArticle(ctx, ArticleInput{
		Title: "Draft", CategoryID: "11",
		Tags: []string{"Secret Plans"}, Published: false,
	}); err != nil {
		t.Fatal(err)
	}

	if got := tagByName(s, "Secret Plans"); got != nil {
		t.Errorf("unpublished tag appeared with count %d", *got)
	}

	// Unpublishing the only article with a tag removes the tag entirely.
	published := false
	if _, err := s.UpdateArticle(ctx, "103", ArticlePatch{Published: &published}); err != nil {
		t.Fatal(err)
	}
	if got := tagByName(s, "CSS"); got != nil {
		t.Errorf("tag of unpublished article still indexed with count %d", *got)
	}
}

func TestAllTags_SlugIDs(t *testing.T) {
	s, _ := newTestStore(t)

	for _, tag := range s.AllTags() {
		if tag.Name == "Future Tech" {
			if tag.ID != "future-tech" {
				t.Errorf("slug = %q, want future-tech", tag.ID)
			}
			return
		}
	}
	t.Fatal("Future Tech tag not found in index")
}

func TestAllTags_FirstEncounterOrder(t *testing.T) {
	s, _ := newTestStore(t)

	tags := s.AllTags()
	if len(tags) < 2 {
		t.Fatal("expected several tags from seed data")
	}
	// Seed article 101 comes first, so its tags open the index.
	if tags[0].Name != "Ramen" || tags[1].Name != "Travel" {
		t.Errorf("index order = %s, %s; want Ramen, Travel", tags[0].Name, tags[1].Name)
	}
}

// TestTagMergeViaBulkUpdates exercises the documented tag-merge pattern:
// a merge is nothing but bulk article updates; the source tag then
// disappears from the derived index on its own.
func TestTagMergeViaBulkUpdates(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// Three published articles tagged WebDev, one of them also Tech.
	for _, in := range []ArticleInput{
		{Title: "A", CategoryID: "21", Tags: []string{"WebDev"}, Published: true},
		{Title: "B", CategoryID: "21", Tags: []string{"WebDev", "Tech"}, Published: true},
		{Title: "C", CategoryID: "22", Tags: []string{"Go", "WebDev"}, Published: true},
	} {
		if _, err := s.AddArticle(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	// Merge WebDev into Tech: rewrite every affected article's tag list.
	for _, a := range s.Articles() {
		if !a.HasTag("WebDev") {
			continue
		}
		tags := make([]string, 0, len(a.Tags))
		for _, tag := range a.Tags {
			if tag != "WebDev" && tag != "Tech" {
				tags = append(tags, tag)
			}
		}
		tags = append(tags, "Tech")
		if _, err := s.UpdateArticle(ctx, a.ID, ArticlePatch{Tags: tags}); err != nil {
			t.Fatal(err)
		}
	}

	if got := tagByName(s, "WebDev"); got != nil {
		t.Errorf("WebDev still indexed with count %d", *got)
	}
	if got := tagByName(s, "Tech"); got == nil || *got != 3 {
		t.Errorf("Tech count = %v, want 3", got)
	}
	for _, a := range s.ArticlesByTag("Tech") {
		seen := 0
		for _, tag := range a.Tags {
			if tag == "Tech" {
				seen++
			}
		}
		if seen != 1 {
			t.Errorf("article %s carries Tech %d times", a.ID, seen)
		}
	}
}
