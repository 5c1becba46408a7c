// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/blog"
	"inkwell/internal/markdown"
	"inkwell/internal/models"
	"inkwell/internal/slug"
)

const excerptRunes = 200

// Public serves the read-only site API. Only published articles are
// visible here; drafts never leak past the admin surface.
type Public struct {
	blog *blog.Store
}

func NewPublic(store *blog.Store) *Public {
	return &Public{blog: store}
}

// publicArticle is the list shape for the public surface. Content stays
// behind the detail endpoint to keep list payloads small.
type publicArticle struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	CategoryID string   `json:"categoryId"`
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	Author     string   `json:"author"`
	CreatedAt  string   `json:"createdAt"`
}

func (h *Public) listItem(a models.Article) publicArticle {
	excerpt := a.Excerpt
	if excerpt == "" {
		excerpt = markdown.Excerpt(a.Content, excerptRunes)
	}
	return publicArticle{
		ID:         a.ID,
		Title:      a.Title,
		Excerpt:    excerpt,
		CategoryID: a.CategoryID,
		Category:   h.blog.CategoryPath(a.CategoryID),
		Tags:       a.Tags,
		ImageURL:   a.ImageURL,
		Author:     a.Author,
		CreatedAt:  a.CreatedAt.Format("2006-01-02"),
	}
}

func (h *Public) listItems(articles []models.Article) []publicArticle {
	out := make([]publicArticle, 0, len(articles))
	for _, a := range articles {
		out = append(out, h.listItem(a))
	}
	return out
}

// ListArticles returns published articles, newest first.
func (h *Public) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles := h.blog.PublishedArticles()
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	respondJSON(w, http.StatusOK, h.listItems(articles))
}

// articleDetail extends the list shape with rendered content.
type articleDetail struct {
	publicArticle
	Content string `json:"content"`
}

// GetArticle returns a single published article with its content rendered
// to HTML. Drafts answer 404 the same as unknown ids.
func (h *Public) GetArticle(w http.ResponseWriter, r *http.Request) {
	article := h.blog.Article(chi.URLParam(r, "id"))
	if article == nil || !article.Published {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}
	content, err := markdown.ToHTML(article.Content)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render failed")
		return
	}
	respondJSON(w, http.StatusOK, articleDetail{
		publicArticle: h.listItem(*article),
		Content:       content,
	})
}

// CategoryArticles returns the published articles filed directly under
// the category. Main category ids match nothing; articles live on
// sub-categories only.
func (h *Public) CategoryArticles(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	respondJSON(w, http.StatusOK, h.listItems(h.blog.ArticlesByCategory(id)))
}

// CategoryTree returns the two-level navigation tree.
func (h *Public) CategoryTree(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.blog.CategoryTree())
}

// ListTags returns the derived tag index sorted by name.
func (h *Public) ListTags(w http.ResponseWriter, r *http.Request) {
	tags := h.blog.AllTags()
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	respondJSON(w, http.StatusOK, tags)
}

// TagArticles resolves a tag by its slug and returns the published
// articles carrying it.
func (h *Public) TagArticles(w http.ResponseWriter, r *http.Request) {
	want := chi.URLParam(r, "slug")
	for _, t := range h.blog.AllTags() {
		if slug.ForTag(t.Name) == want {
			respondJSON(w, http.StatusOK, h.listItems(h.blog.ArticlesByTag(t.Name)))
			return
		}
	}
	respondError(w, http.StatusNotFound, "tag not found")
}
