// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"errors"
	"testing"
)

func TestAddArticle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	art, err := s.AddArticle(ctx, ArticleInput{
		Title:      "Yatai Nights",
		Content:    "<p>Street food after dark.</p>",
		CategoryID: "11",
		Tags:       []string{"Travel", "Ramen"},
		Author:     "Alex Chen",
		Published:  true,
	})
	if err != nil {
		t.Fatalf("AddArticle: %v", err)
	}

	if art.ID == "" {
		t.Error("expected generated id")
	}
	if !art.CreatedAt.Equal(art.UpdatedAt) {
		t.Error("createdAt and updatedAt should match on creation")
	}
	if got := s.Article(art.ID); got == nil {
		t.Error("created article not in collection")
	}
}

func TestAddArticle_RejectsMainCategory(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// Travel (id 1) is a main category; articles cannot live there.
	_, err := s.AddArticle(ctx, ArticleInput{
		Title: "Lost", CategoryID: "1", Published: true,
	})
	if !errors.Is(err, ErrCategoryConstraint) {
		t.Fatalf("err = %v, want ErrCategoryConstraint", err)
	}

	// Fukuoka (id 11) is a sub-category, so this must succeed.
	if _, err := s.AddArticle(ctx, ArticleInput{
		Title: "Found", CategoryID: "11", Published: true,
	}); err != nil {
		t.Errorf("AddArticle to sub-category failed: %v", err)
	}
}

func TestAddArticle_RejectsUnknownCategory(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddArticle(context.Background(), ArticleInput{
		Title: "Orphan", CategoryID: "does-not-exist",
	})
	if !errors.Is(err, ErrCategoryConstraint) {
		t.Errorf("err = %v, want ErrCategoryConstraint", err)
	}
}

func TestUpdateArticle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	title := "Hidden Ramen Shops of Fukuoka, Revisited"
	published := false
	updated, err := s.UpdateArticle(ctx, "101", ArticlePatch{
		Title: &title, Published: &published,
	})
	if err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}
	if updated.Title != title {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Published {
		t.Error("published flag not patched")
	}
	if updated.Author != "Alex Chen" {
		t.Error("unpatched field changed")
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("updatedAt not refreshed")
	}
}

func TestUpdateArticle_EmptyPatchBumpsOnlyUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	before := *s.Article("102")
	updated, err := s.UpdateArticle(ctx, "102", ArticlePatch{})
	if err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}

	if !updated.UpdatedAt.After(before.UpdatedAt) {
		t.Error("updatedAt should change on an empty patch")
	}

	// Everything else must be untouched.
	after := *updated
	after.UpdatedAt = before.UpdatedAt
	if after.Title != before.Title || after.Content != before.Content ||
		after.Excerpt != before.Excerpt || after.CategoryID != before.CategoryID ||
		after.Author != before.Author || after.ImageURL != before.ImageURL ||
		after.Published != before.Published || len(after.Tags) != len(before.Tags) {
		t.Errorf("empty patch changed fields: before %+v, after %+v", before, after)
	}
}

func TestUpdateArticle_RevalidatesCategory(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	mainCat := "2"
	_, err := s.UpdateArticle(ctx, "101", ArticlePatch{CategoryID: &mainCat})
	if !errors.Is(err, ErrCategoryConstraint) {
		t.Fatalf("err = %v, want ErrCategoryConstraint", err)
	}
	if s.Article("101").CategoryID != "11" {
		t.Error("failed update still changed the category")
	}

	subCat := "12"
	if _, err := s.UpdateArticle(ctx, "101", ArticlePatch{CategoryID: &subCat}); err != nil {
		t.Errorf("move to sub-category failed: %v", err)
	}
}

func TestUpdateArticle_UnknownIDIsSilentNoop(t *testing.T) {
	s, _ := newTestStore(t)

	title := "Ghost"
	updated, err := s.UpdateArticle(context.Background(), "nope", ArticlePatch{Title: &title})
	if err != nil {
		t.Errorf("unknown article update returned error: %v", err)
	}
	if updated != nil {
		t.Errorf("unknown article update returned %+v", updated)
	}
}

func TestDeleteArticle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.DeleteArticle(ctx, "103")
	if s.Article("103") != nil {
		t.Error("article still present after delete")
	}

	// Unknown id is a no-op, not a panic or error.
	s.DeleteArticle(ctx, "nope")
	if len(s.Articles()) != 2 {
		t.Errorf("collection size = %d, want 2", len(s.Articles()))
	}
}

func TestArticlesByCategory(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	got := s.ArticlesByCategory("11")
	if len(got) != 1 || got[0].ID != "101" {
		t.Fatalf("ArticlesByCategory(11) = %v", got)
	}

	// A main category id matches nothing: articles never reference mains.
	if got := s.ArticlesByCategory("1"); len(got) != 0 {
		t.Errorf("main category matched %d articles", len(got))
	}

	// Drafts are excluded.
	published := false
	if _, err := s.UpdateArticle(ctx, "101", ArticlePatch{Published: &published}); err != nil {
		t.Fatal(err)
	}
	if got := s.ArticlesByCategory("11"); len(got) != 0 {
		t.Errorf("draft article returned: %v", got)
	}
}

func TestArticlesByTag(t *testing.T) {
	s, _ := newTestStore(t)

	got := s.ArticlesByTag("CSS")
	if len(got) != 1 || got[0].ID != "103" {
		t.Fatalf("ArticlesByTag(CSS) = %v", got)
	}

	// Matching is case-sensitive.
	if got := s.ArticlesByTag("css"); len(got) != 0 {
		t.Errorf("case-insensitive match happened: %v", got)
	}
}

func TestPublishedArticles_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if _, err := s.AddArticle(ctx, ArticleInput{
		Title: "Draft", CategoryID: "11", Published: false,
	}); err != nil {
		t.Fatal(err)
	}

	got := s.PublishedArticles()
	if len(got) != 3 {
		t.Fatalf("published count = %d, want 3", len(got))
	}
	// Relative storage order preserved, no implicit sort.
	if got[0].ID != "101" || got[1].ID != "102" || got[2].ID != "103" {
		t.Errorf("order changed: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}
