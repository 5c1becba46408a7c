// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"fmt"

	"inkwell/internal/models"
)

// ArticleInput carries the caller-supplied fields for a new article.
type ArticleInput struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	CategoryID string   `json:"categoryId"`
	Tags       []string `json:"tags"`
	Author     string   `json:"author"`
	ImageURL   string   `json:"imageUrl"`
	Published  bool     `json:"published"`
}

// ArticlePatch is a partial article update. Nil fields are left
// unchanged. Tags follows the same rule: nil leaves the tag list alone,
// while an empty non-nil slice clears it.
type ArticlePatch struct {
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	Excerpt    *string  `json:"excerpt"`
	CategoryID *string  `json:"categoryId"`
	Tags       []string `json:"tags"`
	Author     *string  `json:"author"`
	ImageURL   *string  `json:"imageUrl"`
	Published  *bool    `json:"published"`
}

// AddArticle creates an article after checking that its category is a
// sub-category. The new article gets a generated id and matching
// creation/update timestamps.
func (s *Store) AddArticle(ctx context.Context, in ArticleInput) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSubCategory(in.CategoryID); err != nil {
		return nil, err
	}

	now := s.now()
	art := models.Article{
		ID:         s.newID(),
		Title:      in.Title,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		CategoryID: in.CategoryID,
		Tags:       in.Tags,
		Author:     in.Author,
		CreatedAt:  now,
		UpdatedAt:  now,
		ImageURL:   in.ImageURL,
		Published:  in.Published,
	}
	if art.Tags == nil {
		art.Tags = []string{}
	}

	s.articles = append(s.articles, art)
	s.persistArticles(ctx)
	return &art, nil
}

// UpdateArticle merges the patch into the article with the given id. A
// patched category id is validated against the sub-category constraint
// exactly like AddArticle. The update timestamp is refreshed even for an
// empty patch. An unknown id is a silent no-op returning (nil, nil).
func (s *Store) UpdateArticle(ctx context.Context, id string, patch ArticlePatch) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.articleIndex(id)
	if idx < 0 {
		return nil, nil
	}

	if patch.CategoryID != nil {
		if err := s.checkSubCategory(*patch.CategoryID); err != nil {
			return nil, err
		}
	}

	art := &s.articles[idx]
	if patch.Title != nil {
		art.Title = *patch.Title
	}
	if patch.Content != nil {
		art.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		art.Excerpt = *patch.Excerpt
	}
	if patch.CategoryID != nil {
		art.CategoryID = *patch.CategoryID
	}
	if patch.Tags != nil {
		art.Tags = patch.Tags
	}
	if patch.Author != nil {
		art.Author = *patch.Author
	}
	if patch.ImageURL != nil {
		art.ImageURL = *patch.ImageURL
	}
	if patch.Published != nil {
		art.Published = *patch.Published
	}
	art.UpdatedAt = s.now()

	s.persistArticles(ctx)
	updated := *art
	return &updated, nil
}

// DeleteArticle removes an article unconditionally. Unknown ids are a
// silent no-op.
func (s *Store) DeleteArticle(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.articleIndex(id)
	if idx < 0 {
		return
	}

	s.articles = append(s.articles[:idx], s.articles[idx+1:]...)
	s.persistArticles(ctx)
}

// Article returns the article with the given id (published or not), or
// nil if not found.
func (s *Store) Article(id string) *models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.articleIndex(id)
	if idx < 0 {
		return nil
	}
	art := s.articles[idx]
	return &art
}

// ArticlesByCategory returns the published articles assigned directly to
// the given category. There is no transitive match through children: a
// main category id matches nothing, because articles never reference
// main categories.
func (s *Store) ArticlesByCategory(categoryID string) []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterArticles(func(a *models.Article) bool {
		return a.Published && a.CategoryID == categoryID
	})
}

// ArticlesByTag returns the published articles whose tag list contains
// the given tag. Matching is exact and case-sensitive.
func (s *Store) ArticlesByTag(tag string) []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterArticles(func(a *models.Article) bool {
		return a.Published && a.HasTag(tag)
	})
}

// PublishedArticles returns all published articles in storage order.
// Callers that need a different order sort the result themselves.
func (s *Store) PublishedArticles() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterArticles(func(a *models.Article) bool {
		return a.Published
	})
}

// checkSubCategory enforces the hierarchy constraint for article writes:
// the referenced category must exist and have a parent. Callers must
// hold the lock.
func (s *Store) checkSubCategory(categoryID string) error {
	idx := s.categoryIndex(categoryID)
	if idx < 0 {
		return fmt.Errorf("category %s does not exist: %w", categoryID, ErrCategoryConstraint)
	}
	if s.categories[idx].IsMain() {
		return fmt.Errorf("category %s is a main category: %w", categoryID, ErrCategoryConstraint)
	}
	return nil
}

// articleIndex returns the position of an article in the collection, or
// -1. Callers must hold the lock.
func (s *Store) articleIndex(id string) int {
	for i := range s.articles {
		if s.articles[i].ID == id {
			return i
		}
	}
	return -1
}

// filterArticles copies the articles matching the predicate, preserving
// storage order. Callers must hold the lock.
func (s *Store) filterArticles(keep func(*models.Article) bool) []models.Article {
	var out []models.Article
	for i := range s.articles {
		if keep(&s.articles[i]) {
			out = append(out, s.articles[i])
		}
	}
	return out
}
